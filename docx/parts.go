package docx

import "encoding/xml"

// The types in this file are the write-side mirror of document.go. Element
// names carry the "w:" prefix literally so the output uses the prefixes
// Word expects; encoding/xml cannot emit prefixed names from namespace tags.

// wDocument is the root of word/document.xml.
type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	XmlnsR  string   `xml:"xmlns:r,attr"`
	Body    wBody    `xml:"w:body"`
}

// wBody holds paragraphs and tables in document order, then the section
// properties that must come last.
type wBody struct {
	Content []interface{} `xml:",any"`
	SectPr  wSectPr       `xml:"w:sectPr"`
}

type wParagraph struct {
	XMLName xml.Name `xml:"w:p"`
	PPr     *wPPr    `xml:"w:pPr,omitempty"`
	Runs    []wRun   `xml:"w:r"`
}

type wPPr struct {
	PStyle *wVal `xml:"w:pStyle,omitempty"`
}

type wRun struct {
	XMLName xml.Name      `xml:"w:r"`
	RPr     *wRPr         `xml:"w:rPr,omitempty"`
	Content []interface{} `xml:",any"`
}

type wText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type wBreak struct {
	XMLName xml.Name `xml:"w:br"`
	Type    string   `xml:"w:type,attr,omitempty"`
}

type wTab struct {
	XMLName xml.Name `xml:"w:tab"`
}

type wRPr struct {
	Bold   *wOnOff `xml:"w:b,omitempty"`
	Italic *wOnOff `xml:"w:i,omitempty"`
	Color  *wVal   `xml:"w:color,omitempty"`
	Size   *wVal   `xml:"w:sz,omitempty"`
}

// wVal is any element whose only content is a w:val attribute.
type wVal struct {
	Val string `xml:"w:val,attr"`
}

// wOnOff is a toggle element whose presence means "on".
type wOnOff struct{}

type wWidth struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type wTable struct {
	XMLName xml.Name `xml:"w:tbl"`
	TblPr   wTblPr   `xml:"w:tblPr"`
	Grid    wTblGrid `xml:"w:tblGrid"`
	Rows    []wRow   `xml:"w:tr"`
}

type wTblPr struct {
	Style wVal   `xml:"w:tblStyle"`
	Width wWidth `xml:"w:tblW"`
	Look  wVal   `xml:"w:tblLook"`
}

type wTblGrid struct {
	Cols []wGridCol `xml:"w:gridCol"`
}

type wGridCol struct {
	W string `xml:"w:w,attr"`
}

type wRow struct {
	TrPr  *wTrPr  `xml:"w:trPr,omitempty"`
	Cells []wCell `xml:"w:tc"`
}

type wTrPr struct {
	Header *wOnOff `xml:"w:tblHeader,omitempty"`
}

type wCell struct {
	TcPr       wTcPr        `xml:"w:tcPr"`
	Paragraphs []wParagraph `xml:"w:p"`
}

type wTcPr struct {
	Width wWidth `xml:"w:tcW"`
}

type wSectPr struct {
	PgSz  wPgSz  `xml:"w:pgSz"`
	PgMar wPgMar `xml:"w:pgMar"`
}

type wPgSz struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type wPgMar struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

// wStyles is the root of word/styles.xml.
type wStyles struct {
	XMLName xml.Name `xml:"w:styles"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Styles  []wStyle `xml:"w:style"`
}

type wStyle struct {
	Type    string       `xml:"w:type,attr"`
	Default string       `xml:"w:default,attr,omitempty"`
	StyleID string       `xml:"w:styleId,attr"`
	Name    wVal         `xml:"w:name"`
	BasedOn *wVal        `xml:"w:basedOn,omitempty"`
	Next    *wVal        `xml:"w:next,omitempty"`
	QFormat *wOnOff      `xml:"w:qFormat,omitempty"`
	PPr     *wStylePPr   `xml:"w:pPr,omitempty"`
	RPr     *wRPr        `xml:"w:rPr,omitempty"`
	TblPr   *wStyleTblPr `xml:"w:tblPr,omitempty"`
}

type wStylePPr struct {
	KeepNext   *wOnOff   `xml:"w:keepNext,omitempty"`
	Spacing    *wSpacing `xml:"w:spacing,omitempty"`
	OutlineLvl *wVal     `xml:"w:outlineLvl,omitempty"`
}

type wSpacing struct {
	Before string `xml:"w:before,attr,omitempty"`
	After  string `xml:"w:after,attr,omitempty"`
}

type wStyleTblPr struct {
	Borders wBorders `xml:"w:tblBorders"`
}

type wBorders struct {
	Top     wBorder `xml:"w:top"`
	Left    wBorder `xml:"w:left"`
	Bottom  wBorder `xml:"w:bottom"`
	Right   wBorder `xml:"w:right"`
	InsideH wBorder `xml:"w:insideH"`
	InsideV wBorder `xml:"w:insideV"`
}

type wBorder struct {
	Val   string `xml:"w:val,attr"`
	Sz    string `xml:"w:sz,attr"`
	Space string `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

// wCoreProperties is the root of docProps/core.xml.
type wCoreProperties struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string   `xml:"xmlns:dcterms,attr"`
	XmlnsDCMI      string   `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	Keywords       string   `xml:"cp:keywords,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Created        *wW3CDTF `xml:"dcterms:created,omitempty"`
	Modified       *wW3CDTF `xml:"dcterms:modified,omitempty"`
}

type wW3CDTF struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// appProperties is the root of docProps/app.xml.
type appProperties struct {
	XMLName     xml.Name `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Properties"`
	Application string   `xml:"Application"`
	DocSecurity int      `xml:"DocSecurity"`
	Company     string   `xml:"Company,omitempty"`
}

// contentTypes is the root of [Content_Types].xml.
type contentTypes struct {
	XMLName   xml.Name              `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []contentTypeDefault  `xml:"Default"`
	Overrides []contentTypeOverride `xml:"Override"`
}

type contentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// relationships is the root of any _rels/*.rels part.
type relationships struct {
	XMLName       xml.Name       `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationships []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

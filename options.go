package finbook

import (
	"go.uber.org/zap"

	"github.com/tsawler/finbook/format"
)

// GenerateOptions holds configuration for document generation.
type GenerateOptions struct {
	// Output format; Unknown means "from the file extension, else DOCX"
	format format.Format

	// Metadata overrides
	author  string
	company string

	logger *zap.Logger
}

// defaultOptions returns the default generation options.
func defaultOptions() GenerateOptions {
	return GenerateOptions{
		format: format.Unknown,
		logger: zap.NewNop(),
	}
}

// clone creates a copy of GenerateOptions.
func (o GenerateOptions) clone() GenerateOptions {
	return GenerateOptions{
		format:  o.format,
		author:  o.author,
		company: o.company,
		logger:  o.logger,
	}
}

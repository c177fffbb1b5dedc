package utils

const (
	// ProgramName is the name printed in the startup banner and report.
	ProgramName = "seqmap"

	// ProgramVersion is the version of the seqmap binary.
	ProgramVersion = "1.0.0"

	// ProgramURL points readers of the banner to more information.
	ProgramURL = "http://github.com/schv/seqmap"
)

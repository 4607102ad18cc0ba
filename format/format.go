package format

import (
	"path/filepath"
	"strings"
)

type Format string

// File format
const (
	UnknownFormat Format = "unknown"
	// document format
	JSON Format = "json"
	// export formats
	YAML  Format = "yaml"
	XML   Format = "xml"
	Excel Format = "xlsx"
	Bin   Format = "bin"
	Text  Format = "txt"
)

// File format extension
const (
	UnknownExt string = ".unknown"
	JSONExt    string = ".json"
	YAMLExt    string = ".yaml"
	XMLExt     string = ".xml"
	ExcelExt   string = ".xlsx"
	BinExt     string = ".bin"
	TextExt    string = ".txt"
)

// GetFormat returns the file's format by filename extension.
func GetFormat(filename string) Format {
	return Ext2Format(filepath.Ext(filename))
}

func Ext2Format(ext string) Format {
	switch strings.ToLower(ext) {
	case JSONExt:
		return JSON
	case YAMLExt, ".yml":
		return YAML
	case XMLExt:
		return XML
	case ExcelExt:
		return Excel
	case BinExt:
		return Bin
	case TextExt:
		return Text
	default:
		return UnknownFormat
	}
}

func Format2Ext(fmt Format) string {
	switch fmt {
	case JSON:
		return JSONExt
	case YAML:
		return YAMLExt
	case XML:
		return XMLExt
	case Excel:
		return ExcelExt
	case Bin:
		return BinExt
	case Text:
		return TextExt
	default:
		return UnknownExt
	}
}

// ExportFormats lists the formats a document can be exported to.
var ExportFormats = []Format{JSON, YAML, XML, Excel, Bin, Text}

// Parse returns the format named s, such as "yaml" or ".yaml".
func Parse(s string) Format {
	name := strings.TrimPrefix(strings.ToLower(s), ".")
	if name == "yml" {
		return YAML
	}
	if Amongst(Format(name), ExportFormats) {
		return Format(name)
	}
	return UnknownFormat
}

// IsExportFormat checks whether the fmt belongs to [ExportFormats].
func IsExportFormat(fmt Format) bool {
	return Amongst(fmt, ExportFormats)
}

func Amongst(fmt Format, formats []Format) bool {
	for _, f := range formats {
		if f == fmt {
			return true
		}
	}
	return false
}

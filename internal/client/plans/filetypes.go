package plans

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSizeMB is the largest upload accepted on any plan.
const MaxFileSizeMB = 100

// MaxFileSizeBytes is MaxFileSizeMB in bytes.
const MaxFileSizeBytes int64 = MaxFileSizeMB << 20

const (
	TypeXLS  = "application/vnd.ms-excel"
	TypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	TypeCSV  = "text/csv"
	TypePDF  = "application/pdf"
)

var allowedFileTypes = []string{TypeXLS, TypeXLSX, TypeCSV, TypePDF}

var typeByExt = map[string]string{
	".xls":  TypeXLS,
	".xlsx": TypeXLSX,
	".csv":  TypeCSV,
	".pdf":  TypePDF,
}

// sniffing cannot tell these containers apart from the formats built on them
var generic = []string{"text/plain", "application/octet-stream", "application/zip", "application/x-ole-storage"}

// AllowedFileTypes returns the accepted upload content types.
func AllowedFileTypes() []string {
	return slices.Clone(allowedFileTypes)
}

// IsAllowedType reports whether contentType, ignoring parameters, is accepted.
func IsAllowedType(contentType string) bool {
	base, _, _ := strings.Cut(contentType, ";")
	return slices.Contains(allowedFileTypes, strings.ToLower(strings.TrimSpace(base)))
}

// DetectContentType sniffs content and falls back to the file extension when
// the sniffed type is a generic container or plain text.
func DetectContentType(filename string, content []byte) string {
	m := mimetype.Detect(content)
	for p := m; p != nil; p = p.Parent() {
		for _, t := range allowedFileTypes {
			if p.Is(t) {
				return t
			}
		}
	}

	if byExt, ok := typeByExt[strings.ToLower(filepath.Ext(filename))]; ok {
		for _, g := range generic {
			if m.Is(g) {
				return byExt
			}
		}
	}

	base, _, _ := strings.Cut(m.String(), ";")
	return base
}

package textract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/leasemetric/leasebench/constants"
)

// wordDocument mirrors the fragment of WordprocessingML we care about:
// body paragraphs and their text runs. Everything else is skipped by the
// XML decoder.
type wordDocument struct {
	Body struct {
		Paragraphs []wordParagraph `xml:"p"`
	} `xml:"body"`
}

type wordParagraph struct {
	Runs []struct {
		Text string `xml:"t"`
	} `xml:"r"`
}

func (e *Extractor) extractDOCX(path string) (ExtractionResult, error) {
	text, err := readDOCXText(path)
	if err != nil {
		return ExtractionResult{SourceType: constants.DOCX}, err
	}
	return ExtractionResult{
		Text:       text,
		SourceType: constants.DOCX,
		Method:     "docx-text",
		Confidence: 1.0,
	}, nil
}

// readDOCXText opens the OOXML container and joins the document's paragraph
// texts with newlines, matching what a paragraph iterator over the file
// would produce.
func readDOCXText(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer func() { _ = zr.Close() }()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		defer func() { _ = rc.Close() }()

		var doc wordDocument
		if err := xml.NewDecoder(rc).Decode(&doc); err != nil {
			return "", fmt.Errorf("decode document.xml: %w", err)
		}

		paras := make([]string, 0, len(doc.Body.Paragraphs))
		for _, p := range doc.Body.Paragraphs {
			var b strings.Builder
			for _, r := range p.Runs {
				b.WriteString(r.Text)
			}
			paras = append(paras, b.String())
		}
		return strings.Join(paras, "\n"), nil
	}
	return "", fmt.Errorf("docx has no word/document.xml")
}

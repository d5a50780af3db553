package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const odtMimetype = "application/vnd.oasis.opendocument.text"

type odtContent struct {
	XMLName  xml.Name `xml:"office:document-content"`
	OfficeNS string   `xml:"xmlns:office,attr"`
	TextNS   string   `xml:"xmlns:text,attr"`
	StyleNS  string   `xml:"xmlns:style,attr"`
	Version  string   `xml:"office:version,attr"`
	Body     odtBody  `xml:"office:body"`
}

type odtBody struct {
	Text odtText `xml:"office:text"`
}

type odtText struct {
	Blocks []odtBlock
}

// odtBlock is either a text:h or text:p element; the XMLName decides.
type odtBlock struct {
	XMLName xml.Name
	Level   string `xml:"text:outline-level,attr,omitempty"`
	Text    string `xml:",chardata"`
}

type odtManifest struct {
	XMLName    xml.Name           `xml:"manifest:manifest"`
	ManifestNS string             `xml:"xmlns:manifest,attr"`
	Entries    []odtManifestEntry `xml:"manifest:file-entry"`
}

type odtManifestEntry struct {
	FullPath  string `xml:"manifest:full-path,attr"`
	MediaType string `xml:"manifest:media-type,attr"`
}

// AsODT converts markdown to an OpenDocument Text archive: headings
// become outline elements, everything else flattens to paragraphs.
func AsODT(md string) ([]byte, error) {
	content := odtContent{
		OfficeNS: "urn:oasis:names:tc:opendocument:xmlns:office:1.0",
		TextNS:   "urn:oasis:names:tc:opendocument:xmlns:text:1.0",
		StyleNS:  "urn:oasis:names:tc:opendocument:xmlns:style:1.0",
		Version:  "1.0",
	}
	content.Body.Text.Blocks = odtBlocks(md)

	contentXML, err := xml.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to build content.xml: %w", err)
	}

	manifest := odtManifest{
		ManifestNS: "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0",
		Entries: []odtManifestEntry{
			{FullPath: "/", MediaType: odtMimetype},
			{FullPath: "content.xml", MediaType: "text/xml"},
		},
	}
	manifestXML, err := xml.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to build manifest.xml: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	// The mimetype entry comes first and stays uncompressed so
	// readers can sniff the document type.
	mw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return nil, fmt.Errorf("failed to write mimetype: %w", err)
	}
	if _, err := mw.Write([]byte(odtMimetype)); err != nil {
		return nil, fmt.Errorf("failed to write mimetype: %w", err)
	}

	if err := writeZipFile(zw, "content.xml", append([]byte(xml.Header), contentXML...)); err != nil {
		return nil, err
	}
	if err := writeZipFile(zw, "META-INF/manifest.xml", append([]byte(xml.Header), manifestXML...)); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

var odtHeadings = []struct {
	prefix string
	level  string
}{
	{"# ", "1"},
	{"## ", "2"},
	{"### ", "3"},
	{"#### ", "4"},
	{"##### ", "5"},
	{"###### ", "6"},
}

func odtBlocks(md string) []odtBlock {
	var blocks []odtBlock

	paragraph := func(text string) {
		blocks = append(blocks, odtBlock{
			XMLName: xml.Name{Local: "text:p"},
			Text:    text,
		})
	}

	inCode := false
	var code []string

	for _, line := range strings.Split(md, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "```") {
			if inCode {
				for _, cl := range code {
					paragraph(cl)
				}
				code = code[:0]
				inCode = false
			} else {
				inCode = true
			}
			continue
		}
		if inCode {
			code = append(code, line)
			continue
		}

		if block, ok := odtHeading(line); ok {
			blocks = append(blocks, block)
			continue
		}

		switch {
		case stripped == "---" || stripped == "***":
			paragraph(strings.Repeat("_", 50))
		case hasBulletPrefix(stripped):
			paragraph("• " + stripped[2:])
		case isOrderedItem(stripped):
			paragraph(stripped)
		case stripped == "":
			paragraph("")
		default:
			paragraph(flattenInline(line))
		}
	}
	return blocks
}

func odtHeading(line string) (odtBlock, bool) {
	for _, h := range odtHeadings {
		if strings.HasPrefix(line, h.prefix) {
			return odtBlock{
				XMLName: xml.Name{Local: "text:h"},
				Level:   h.level,
				Text:    line[len(h.prefix):],
			}, true
		}
	}
	return odtBlock{}, false
}

func writeZipFile(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Package parser reads rendered figure workbooks back through their OOXML parts.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// relationship is one <Relationship> entry of a .rels part.
type relationship struct {
	id     string
	target string
	kind   string
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// resolveRelativePath resolves a relationship target against the directory of the source part.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	dir := baseDir
	for strings.HasPrefix(target, "../") {
		target = strings.TrimPrefix(target, "../")
		if i := strings.LastIndex(dir, "/"); i >= 0 {
			dir = dir[:i]
		} else {
			dir = ""
		}
	}
	if dir == "" {
		return target
	}
	return dir + "/" + target
}

// relsPath returns the .rels part describing partPath (xl/a/b.xml -> xl/a/_rels/b.xml.rels).
func relsPath(partPath string) string {
	dir, file := "", partPath
	if i := strings.LastIndex(partPath, "/"); i >= 0 {
		dir, file = partPath[:i+1], partPath[i+1:]
	}
	return dir + "_rels/" + file + ".rels"
}

func partDir(partPath string) string {
	if i := strings.LastIndex(partPath, "/"); i >= 0 {
		return partPath[:i]
	}
	return ""
}

func parseRelationships(data []byte) []relationship {
	var result []relationship
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rel relationship
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rel.id = attr.Value
				case "Target":
					rel.target = attr.Value
				case "Type":
					rel.kind = attr.Value
				}
			}
			result = append(result, rel)
		}
	}

	return result
}

// relatedParts resolves the targets of partPath's relationships whose type contains kind.
func relatedParts(r *zip.Reader, partPath, kind string) (map[string]string, error) {
	data, err := readZipFile(r, relsPath(partPath))
	if err != nil || data == nil {
		return nil, err
	}
	result := make(map[string]string)
	for _, rel := range parseRelationships(data) {
		if strings.Contains(strings.ToLower(rel.kind), kind) {
			result[rel.id] = resolveRelativePath(rel.target, partDir(partPath))
		}
	}
	return result, nil
}

// parseWorkbookSheets maps relationship id to sheet name.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// sheetParts maps sheet name to its worksheet part path.
func sheetParts(r *zip.Reader) (map[string]string, error) {
	const workbook = "xl/workbook.xml"
	workbookXML, err := readZipFile(r, workbook)
	if err != nil || workbookXML == nil {
		return nil, err
	}
	names := parseWorkbookSheets(workbookXML)

	targets, err := relatedParts(r, workbook, "worksheet")
	if err != nil {
		return nil, err
	}
	result := make(map[string]string)
	for rID, path := range targets {
		if name, ok := names[rID]; ok {
			result[name] = path
		}
	}
	return result, nil
}

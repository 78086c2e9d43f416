package persistence

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/save"
)

// yamlHeader is written above every YAML catalog.
const yamlHeader = "# bookshelf catalog\n"

var (
	jsonEncode = jsoniter.Config{
		EscapeHTML:  false,
		SortMapKeys: true,
	}.Froze()
	jsonDecode = jsoniter.Config{
		DisallowUnknownFields: true,
	}.Froze()
)

// Encode writes doc to w in the given format. FormatAuto encodes YAML.
func Encode(w io.Writer, format save.Format, doc Document) error {
	switch format {
	case save.FormatAuto, save.FormatYAML:
		return encodeYAML(w, doc)
	case save.FormatJSON:
		return encodeJSON(w, doc)
	case save.FormatCSV:
		return encodeCSV(w, doc)
	default:
		return errors.NewValidationError("format", format, "unsupported format")
	}
}

// Decode reads a document from r. The name is only used in error messages.
// Any decode failure is returned as a *errors.CorruptDataError.
func Decode(r io.Reader, format save.Format, name string) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, errors.NewIOError("read", name, err)
	}

	var doc Document
	switch format {
	case save.FormatAuto, save.FormatYAML:
		doc, err = decodeYAML(data, name)
	case save.FormatJSON:
		doc, err = decodeJSON(data, name)
	case save.FormatCSV:
		doc, err = decodeCSV(data, name)
	default:
		return Document{}, errors.NewValidationError("format", format, "unsupported format")
	}
	if err != nil {
		return Document{}, err
	}

	if err := doc.validate(); err != nil {
		return Document{}, errors.NewCorruptDataError(format.String(), name, err.Error(), nil)
	}
	return doc, nil
}

func encodeYAML(w io.Writer, doc Document) error {
	data, err := yaml.MarshalWithOptions(doc,
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.CustomMarshaler[string](marshalYAMLString),
	)
	if err != nil {
		return fmt.Errorf("marshaling catalog to yaml: %w", err)
	}
	if _, err := io.WriteString(w, yamlHeader); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// marshalYAMLString double-quotes strings holding control or other
// non-printing characters. Plain and block scalars fold line breaks and
// strip tabs, so such values only survive a reload in escaped form.
func marshalYAMLString(s string) ([]byte, error) {
	if strings.IndexFunc(s, func(r rune) bool { return !unicode.IsPrint(r) }) >= 0 {
		return []byte(strconv.Quote(s)), nil
	}
	return yaml.Marshal(s)
}

func decodeYAML(data []byte, name string) (Document, error) {
	var doc Document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
		return Document{}, errors.NewCorruptDataError("yaml", name, "cannot parse document", err)
	}
	return doc, nil
}

func encodeJSON(w io.Writer, doc Document) error {
	if doc.Books == nil {
		doc.Books = []Record{}
	}
	data, err := jsonEncode.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling catalog to json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func decodeJSON(data []byte, name string) (Document, error) {
	var doc Document
	if err := jsonDecode.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.NewCorruptDataError("json", name, "cannot parse document", err)
	}
	return doc, nil
}

func encodeCSV(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(constants.CSVHeader, ",")); err != nil {
		return err
	}
	for _, b := range doc.Books {
		if err := checkCSVField("title", b.Title); err != nil {
			return err
		}
		if err := checkCSVField("author", b.Author); err != nil {
			return err
		}
		row := []string{
			b.Title,
			b.Author,
			strconv.Itoa(b.Location.Shelf),
			strconv.Itoa(b.Location.Row),
			strconv.Itoa(b.Quantity),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// checkCSVField rejects values the CSV reader would not give back as
// written: it turns \r\n inside a quoted field into \n.
func checkCSVField(field, value string) error {
	if strings.Contains(value, "\r\n") {
		return errors.NewValidationError(field, value, "contains a CRLF line break, which csv cannot keep; save as yaml or json")
	}
	return nil
}

// decodeCSV reads the header row and one record per line.
// CSV carries no version, so the current one is assumed.
func decodeCSV(data []byte, name string) (Document, error) {
	header := strings.Split(constants.CSVHeader, ",")

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = len(header)

	corrupt := func(line int, msg string, err error) error {
		e := errors.NewCorruptDataError("csv", name, msg, err)
		e.Line = line
		return e
	}

	first, err := cr.Read()
	if err == io.EOF {
		return Document{}, corrupt(1, "missing header row", nil)
	}
	if err != nil {
		return Document{}, csvReadError(name, err)
	}
	if strings.Join(first, ",") != constants.CSVHeader {
		return Document{}, corrupt(1, fmt.Sprintf("unexpected header %q, want %q", strings.Join(first, ","), constants.CSVHeader), nil)
	}

	doc := Document{Version: constants.FormatVersion}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Document{}, csvReadError(name, err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseCSVRow(header, row)
		if err != nil {
			return Document{}, corrupt(line, err.Error(), err)
		}
		doc.Books = append(doc.Books, rec)
	}
	return doc, nil
}

func csvReadError(name string, err error) error {
	var perr *csv.ParseError
	if stderrors.As(err, &perr) {
		e := errors.NewCorruptDataError("csv", name, perr.Err.Error(), err)
		e.Line = perr.Line
		return e
	}
	return errors.NewCorruptDataError("csv", name, "cannot parse document", err)
}

func parseCSVRow(header, row []string) (Record, error) {
	ints := make([]int, 3)
	for i, field := range row[2:] {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Record{}, fmt.Errorf("%s: %q is not an integer", header[i+2], field)
		}
		ints[i] = n
	}
	return Record{
		Title:    row[0],
		Author:   row[1],
		Location: Location{Shelf: ints[0], Row: ints[1]},
		Quantity: ints[2],
	}, nil
}

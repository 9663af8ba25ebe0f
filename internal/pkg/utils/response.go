package utils

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/responses"
	"homeo-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/gosuri/uitable"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// WriteOutput renders value as json, yaml or a table.
func WriteOutput(w io.Writer, format string, value any) error {
	switch format {
	case constvars.OutputFormatJSON, "":
		payload, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		_, err = fmt.Fprintln(w, string(payload))
		return err
	case constvars.OutputFormatYAML:
		payload, err := yaml.Marshal(value)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		_, err = w.Write(payload)
		return err
	case constvars.OutputFormatTable:
		return writeTable(w, value)
	default:
		return exceptions.ErrUnsupportedOutputFormat(format)
	}
}

// WriteResult prints a backend response. Text bodies are written verbatim whatever the
// format; a 204 prints nothing in table format.
func WriteResult(w io.Writer, format string, result *responses.Result) error {
	if result != nil && !result.JSON {
		_, err := fmt.Fprintln(w, result.Text())
		return err
	}
	var data any
	if result != nil {
		data = result.Data
	}
	return WriteOutput(w, format, data)
}

// BuildErrorResponse logs the developer side of err and prints the client message.
func BuildErrorResponse(log *zap.Logger, w io.Writer, err error) {
	if customErr, ok := exceptions.AsCustomError(err); ok {
		log.Error(customErr.DevMessage,
			zap.String("kind", string(customErr.Kind)),
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.Any("location", map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		)
	} else {
		log.Error(err.Error())
	}
	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

func writeTable(w io.Writer, value any) error {
	normalized, err := normalize(value)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.MaxColWidth = 60
	switch v := normalized.(type) {
	case nil:
		return nil
	case []any:
		columns := tableColumns(v)
		if len(columns) == 0 {
			table.AddRow("VALUE")
			for _, item := range v {
				table.AddRow(formatCell(item))
			}
			break
		}
		header := make([]interface{}, len(columns))
		for i, column := range columns {
			header[i] = strings.ToUpper(column)
		}
		table.AddRow(header...)
		for _, item := range v {
			row, _ := item.(map[string]any)
			cells := make([]interface{}, len(columns))
			for i, column := range columns {
				cells[i] = formatCell(row[column])
			}
			table.AddRow(cells...)
		}
	case map[string]any:
		table.AddRow("FIELD", "VALUE")
		for _, key := range sortedKeys(v) {
			table.AddRow(key, formatCell(v[key]))
		}
	default:
		table.AddRow(formatCell(v))
	}

	_, err = fmt.Fprintln(w, table.String())
	return err
}

// normalize turns typed values into the generic shape JSON decoding produces.
func normalize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	var normalized any
	if err := json.Unmarshal(payload, &normalized); err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return normalized, nil
}

func tableColumns(items []any) []string {
	seen := map[string]bool{}
	var columns []string
	for _, item := range items {
		row, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for key := range row {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	sort.Strings(columns)
	// id first, it is what the other commands take as argument
	for i, column := range columns {
		if column == "id" {
			columns = append([]string{"id"}, append(columns[:i:i], columns[i+1:]...)...)
			break
		}
	}
	return columns
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(payload)
	}
}

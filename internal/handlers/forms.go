package handlers

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/alhayat/internal/content"
	"github.com/example/alhayat/internal/utils"
)

type option struct {
	Value string
	Label string
}

// formField describes one input of an admin form. Kind is an input type
// (text, email, url, number, date) or one of textarea, lines, html,
// checkbox and select. Name is the json name of the model field.
type formField struct {
	Name     string
	Label    string
	Kind     string
	Hint     string
	Required bool
	Options  []option
}

type formView struct {
	Heading  string            `json:"-"`
	Action   string            `json:"-"`
	Cancel   string            `json:"-"`
	Fields   []formField       `json:"-"`
	Values   map[string]string `json:"values"`
	Errors   map[string]string `json:"errors,omitempty"`
	Error    string            `json:"error,omitempty"`
	SlugFrom bool              `json:"-"`
}

func field(name, label, kind string) formField {
	return formField{Name: name, Label: label, Kind: kind}
}

func required(name, label string) formField {
	return formField{Name: name, Label: label, Kind: "text", Required: true}
}

func linesField(name, label string) formField {
	return formField{Name: name, Label: label, Kind: "lines", Hint: "One item per line."}
}

func iconField(icons []content.Icon) formField {
	opts := make([]option, 0, len(icons))
	for _, icon := range icons {
		opts = append(opts, option{Value: icon.String(), Label: icon.Label()})
	}
	return formField{Name: "icon_name", Label: "Icon", Kind: "select", Options: opts}
}

func orderField() formField {
	return field("display_order", "Display order", "number")
}

func activeField() formField {
	return field("is_active", "Active (visible on the site)", "checkbox")
}

// formValues flattens a model into the string values a form renders.
// Booleans become "true"/"false" and lists are joined one item per line.
func formValues(v interface{}) map[string]string {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]string{}
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return map[string]string{}
	}

	out := make(map[string]string, len(decoded))
	for key, value := range decoded {
		switch val := value.(type) {
		case nil:
			out[key] = ""
		case string:
			out[key] = val
		case bool:
			out[key] = strconv.FormatBool(val)
		case float64:
			out[key] = strconv.FormatFloat(val, 'f', -1, 64)
		case []interface{}:
			items := make([]string, 0, len(val))
			for _, item := range val {
				if s, ok := item.(string); ok {
					items = append(items, s)
				}
			}
			out[key] = strings.Join(items, "\n")
		}
	}
	return out
}

// applyLines fills the newline-delimited list fields of dst from a form
// body. JSON bodies carry lists as arrays and are left alone.
func applyLines(c *fiber.Ctx, dst interface{}, fields []formField) error {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return nil
	}

	patch := make(map[string][]string)
	for _, f := range fields {
		if f.Kind == "lines" {
			patch[f.Name] = utils.SplitLines(c.FormValue(f.Name))
		}
	}
	if len(patch) == 0 {
		return nil
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

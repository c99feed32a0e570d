package mdgen

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field is one environment variable of a configuration struct
type Field struct {
	Env         string
	Default     string
	Description string
	Secret      bool
}

// Section groups the variables sharing an env prefix
type Section struct {
	Title  string
	Fields []Field
}

// Sections walks the env tags of a configuration struct. Scalar fields of the
// root land in a "General Settings" section, every nested struct declared with
// a prefix gets its own section in declaration order.
func Sections(cfg interface{}) ([]Section, error) {
	t := reflect.TypeOf(cfg)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a struct, got %T", cfg)
	}

	caser := cases.Title(language.English, cases.NoLower)
	general := Section{Title: "General Settings"}
	var nested []Section

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, ok := field.Tag.Lookup("env")
		if !ok {
			continue
		}
		name, options := parseEnvTag(tag)

		if inner := structType(field.Type); inner != nil {
			title := field.Tag.Get("description")
			if title == "" {
				title = field.Name + " configuration"
			}
			section := Section{Title: caser.String(title)}
			for j := 0; j < inner.NumField(); j++ {
				f := inner.Field(j)
				innerTag, ok := f.Tag.Lookup("env")
				if !ok {
					continue
				}
				innerName, innerOptions := parseEnvTag(innerTag)
				section.Fields = append(section.Fields, newField(options["prefix"]+innerName, innerOptions, f.Tag))
			}
			nested = append(nested, section)
			continue
		}

		general.Fields = append(general.Fields, newField(name, options, field.Tag))
	}

	sections := make([]Section, 0, len(nested)+1)
	if len(general.Fields) > 0 {
		sections = append(sections, general)
	}
	return append(sections, nested...), nil
}

// WriteMarkdown renders the sections as markdown tables
func WriteMarkdown(w io.Writer, title string, sections []Section) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("## %s\n\n", section.Title))
		sb.WriteString("| Environment Variable | Default Value | Description |\n")
		sb.WriteString("|---------------------|---------------|-------------|\n")
		for _, field := range section.Fields {
			defaultVal := "`" + field.Default + "`"
			if field.Default == "" {
				defaultVal = "`\"\"`"
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", field.Env, defaultVal, field.Description))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteEnvExample renders the sections as a .env file. Secrets are left blank.
func WriteEnvExample(w io.Writer, sections []Section) error {
	var sb strings.Builder
	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("# %s\n", section.Title))
		for _, field := range section.Fields {
			value := field.Default
			if field.Secret {
				value = ""
			}
			sb.WriteString(fmt.Sprintf("%s=%s\n", field.Env, value))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// GenerateConfigurationsMD writes the configuration reference of cfg to filePath
func GenerateConfigurationsMD(filePath, title string, cfg interface{}) error {
	sections, err := Sections(cfg)
	if err != nil {
		return err
	}
	return writeFile(filePath, func(w io.Writer) error {
		return WriteMarkdown(w, title, sections)
	})
}

// GenerateEnvExample writes an example .env of cfg to filePath
func GenerateEnvExample(filePath string, cfg interface{}) error {
	sections, err := Sections(cfg)
	if err != nil {
		return err
	}
	return writeFile(filePath, func(w io.Writer) error {
		return WriteEnvExample(w, sections)
	})
}

func writeFile(filePath string, render func(io.Writer) error) error {
	var sb strings.Builder
	if err := render(&sb); err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(sb.String()), 0644)
}

func newField(env string, options map[string]string, tag reflect.StructTag) Field {
	return Field{
		Env:         env,
		Default:     options["default"],
		Description: tag.Get("description"),
		Secret:      tag.Get("type") == "secret",
	}
}

// parseEnvTag splits `env:"NAME, default=x, prefix=Y"` into the name and its options
func parseEnvTag(tag string) (string, map[string]string) {
	parts := strings.Split(tag, ",")
	options := make(map[string]string, len(parts)-1)
	for _, part := range parts[1:] {
		key, value, _ := strings.Cut(strings.TrimSpace(part), "=")
		options[key] = value
	}
	return strings.TrimSpace(parts[0]), options
}

func structType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

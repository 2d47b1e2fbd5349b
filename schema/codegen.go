// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.New("schemagen").Funcs(template.FuncMap{
	"goType":          goType,
	"bufferGetter":    bufferGetter,
	"bufferSetter":    bufferSetter,
	"exportField":     exportField,
	"isEnum":            func(s *Schema, f Field) bool { return f.IsEnum(s) },
	"primSize":          func(s *Schema, f Field) int { return f.Size(s) },
	"headerFieldOffset": headerFieldOffset,
	"fixedSizeConst":    fixedSizeConst,
}).ParseFS(templateFS, "templates/*.tmpl"))

// fixedSizeConst returns the name of the Go constant holding m's total
// fixed size. The header message's own fixed size is exposed once, by
// schema.tmpl, as HeaderFixedSize — m's own per-message template must not
// redeclare it under the same name.
func fixedSizeConst(header, m *Message) string {
	if m == header {
		return "HeaderFixedSize"
	}
	return m.Name + "FixedSize"
}

// headerFieldOffset returns the byte offset of the named header field, or
// -1 if the header has no such field (Build already rejects that schema,
// so -1 is unreachable from generated code).
func headerFieldOffset(s *Schema, name string) int {
	for _, f := range s.Header.Required {
		if f.Name == name {
			return f.Offset
		}
	}
	return -1
}

// goType returns the Go type generated accessors use for f.
func goType(s *Schema, f Field) string {
	switch f.Type {
	case TypeByte:
		return "byte"
	case TypeChar:
		return "uint16"
	case TypeShort:
		return "int16"
	case TypeInt:
		return "int32"
	case TypeFloat:
		return "float32"
	case TypeLong:
		return "int64"
	case TypeDouble:
		return "float64"
	case TypeDirectBuffer:
		return "[]byte"
	}
	if f.IsEnum(s) {
		return f.Type.Name
	}
	return "interface{}" // unreachable after Build validates the schema
}

// bufferGetter returns the wire.Buffer getter method name for f's
// primitive type.
func bufferGetter(f Field) string {
	switch f.Type {
	case TypeByte:
		return "GetByte"
	case TypeChar:
		return "GetChar"
	case TypeShort:
		return "GetShort"
	case TypeInt:
		return "GetInt"
	case TypeFloat:
		return "GetFloat"
	case TypeLong:
		return "GetLong"
	case TypeDouble:
		return "GetDouble"
	}
	return "GetByte" // enums are one byte
}

// bufferSetter returns the wire.Buffer setter method name for f's
// primitive type.
func bufferSetter(f Field) string {
	switch f.Type {
	case TypeByte:
		return "PutByte"
	case TypeChar:
		return "PutChar"
	case TypeShort:
		return "PutShort"
	case TypeInt:
		return "PutInt"
	case TypeFloat:
		return "PutFloat"
	case TypeLong:
		return "PutLong"
	case TypeDouble:
		return "PutDouble"
	}
	return "PutByte"
}

// exportField title-cases a schema field name into an exported Go
// identifier, e.g. "applicationId" -> "ApplicationId".
func exportField(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// messageView is the template data for one message's encoder/decoder.
type messageView struct {
	Schema  *Schema
	Message *Message
	Header  *Message
}

// Generate renders the schema's Go source into outDir, one file per
// artifact: one enum type per enum, one encoder/decoder pair per message,
// a dispatcher, a provider, and the schema facade. Generation is
// deterministic: the same Schema always produces byte-identical output.
func Generate(s *Schema, outDir, goPackage string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, e := range s.Enums {
		if err := renderTo(outDir, goPackage+"_enum_"+e.Name+".go", "enum.tmpl", struct {
			Package string
			Enum    *Enum
		}{goPackage, e}); err != nil {
			return fmt.Errorf("schema: generating enum %q: %w", e.Name, err)
		}
	}

	allMessages := append([]*Message{s.Header}, s.Messages...)
	for _, m := range allMessages {
		if err := renderTo(outDir, goPackage+"_message_"+m.Name+".go", "message.tmpl", messageView{
			Schema:  s,
			Message: m,
			Header:  s.Header,
		}); err != nil {
			return fmt.Errorf("schema: generating message %q: %w", m.Name, err)
		}
	}

	if err := renderTo(outDir, goPackage+"_dispatcher.go", "dispatcher.tmpl", struct {
		Package string
		Schema  *Schema
	}{goPackage, s}); err != nil {
		return fmt.Errorf("schema: generating dispatcher: %w", err)
	}

	if err := renderTo(outDir, goPackage+"_provider.go", "provider.tmpl", struct {
		Package string
		Schema  *Schema
	}{goPackage, s}); err != nil {
		return fmt.Errorf("schema: generating provider: %w", err)
	}

	if err := renderTo(outDir, goPackage+"_schema.go", "schema.tmpl", struct {
		Package string
		Schema  *Schema
	}{goPackage, s}); err != nil {
		return fmt.Errorf("schema: generating schema facade: %w", err)
	}

	return nil
}

func renderTo(outDir, fileName, templateName string, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, templateName, data); err != nil {
		return err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Keep the unformatted output on disk so a human can see what the
		// template produced and fix either the template or the source.
		formatted = buf.Bytes()
	}
	return os.WriteFile(filepath.Join(outDir, fileName), formatted, 0o644)
}

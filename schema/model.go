// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema is the immutable data model loaded from a schema XML
// document, plus the code generator that turns it into
// per-message Go encoders, decoders, a dispatcher, and a provider.
//
package schema

import (
	"errors"
	"fmt"

	"github.com/solidcoredata/corebus/wire"
)

// FieldType is one of the fixed primitive wire types, plus DirectBuffer
// (variable length) and EnumRef (one byte, resolved against an Enum by
// name).
type FieldType struct {
	Name string // "byte","char","short","int","float","long","double","DirectBuffer", or an enum name
}

// Well-known primitive type names.
var (
	TypeByte         = FieldType{"byte"}
	TypeChar         = FieldType{"char"}
	TypeShort        = FieldType{"short"}
	TypeInt          = FieldType{"int"}
	TypeFloat        = FieldType{"float"}
	TypeLong         = FieldType{"long"}
	TypeDouble       = FieldType{"double"}
	TypeDirectBuffer = FieldType{"DirectBuffer"}
)

// primitiveSize is the fixed wire size per primitive; DirectBuffer and enum
// references are resolved separately (DirectBuffer is variable length and
// only valid for optional fields; enum references are always 1 byte).
var primitiveSize = map[string]int{
	"byte":   1,
	"char":   2,
	"short":  2,
	"int":    4,
	"float":  4,
	"long":   8,
	"double": 8,
}

// Field is one attribute of a Message.
type Field struct {
	ID              byte // optional fields only
	Name            string
	Type            FieldType
	Required        bool
	Header          bool
	Version         byte
	Metadata        string
	ImpliedDecimals int
	PrimaryKey      bool
	Key             bool
	ForeignKey      string // referenced entity name, or ""

	// Offset is computed for required fields only: the byte offset of this
	// field from the start of the message (header-inherited fields
	// included for non-header messages).
	Offset int
}

// IsEnum reports whether f.Type references an Enum rather than a
// primitive or DirectBuffer.
func (f Field) IsEnum(s *Schema) bool {
	_, ok := s.enumsByName[f.Type.Name]
	return ok
}

// Size returns the fixed wire size of f, or 0 if f is variable length
// (DirectBuffer) or an unknown type (callers should validate first via
// Build).
func (f Field) Size(s *Schema) int {
	if f.Type == TypeDirectBuffer {
		return 0
	}
	if sz, ok := primitiveSize[f.Type.Name]; ok {
		return sz
	}
	if f.IsEnum(s) {
		return 1
	}
	return 0
}

// EnumValue is one named value of an Enum.
type EnumValue struct {
	Name        string
	Value       byte
	Description string
}

// Enum is an ordered list of named byte values.
type Enum struct {
	Name        string
	Description string
	Values      []EnumValue
}

// ValueOf returns the EnumValue with the given byte value, and whether it
// was found.
func (e *Enum) ValueOf(v byte) (EnumValue, bool) {
	for _, ev := range e.Values {
		if ev.Value == v {
			return ev, true
		}
	}
	return EnumValue{}, false
}

// Message describes one wire message.
type Message struct {
	ID               byte
	Name             string
	Entity           string
	BaseEntity       string
	DecoderInterface string
	EncoderInterface string
	Description      string
	Required         []Field // message-specific required fields, in declaration order
	Optional         []Field // optional (TLV) fields, in declaration order

	// FixedSize is the total required-field byte size, header prefix
	// included.
	FixedSize int
}

// IsHeader reports whether m is the schema's header message.
func (m *Message) IsHeader(s *Schema) bool { return m == s.Header }

// Property is one free-form (key, value) schema property.
type Property struct {
	Key   string
	Value string
}

// Schema is the immutable, shared description loaded from an XML
// document.
type Schema struct {
	Prefix      string
	Package     string
	Version     int
	Description string
	Header      *Message
	Messages    []*Message
	Enums       []*Enum
	Properties  []Property

	enumsByName    map[string]*Enum
	messagesByName map[string]*Message
	messagesByID   map[byte]*Message
}

// Conventional header field names the runtime relies on.
const (
	FieldApplicationID             = "applicationId"
	FieldApplicationSequenceNumber = "applicationSequenceNumber"
	FieldTimestamp                 = "timestamp"
	FieldOptionalFieldsIndex       = "optionalFieldsIndex"
	FieldSchemaVersion             = "schemaVersion"
	FieldMessageType               = "messageType"
)

var requiredHeaderFields = []string{
	FieldApplicationID,
	FieldApplicationSequenceNumber,
	FieldTimestamp,
	FieldOptionalFieldsIndex,
	FieldSchemaVersion,
	FieldMessageType,
}

// ErrInvalidSchema is returned for an unusable schema document:
// malformed XML, an unknown type, a duplicate id, or a header missing a
// required header field.
var ErrInvalidSchema = errors.New("schema: invalid schema")

// Build validates doc and computes every required field's offset,
// returning the immutable Schema the rest of the generator and runtime
// operate on. Generation is deterministic: offsets are assigned in
// declaration order using the fixed primitive-size table.
func Build(doc *Document) (*Schema, error) {
	s := &Schema{
		Prefix:         doc.Prefix,
		Package:        doc.Package,
		Version:        doc.Version,
		Description:    doc.Description,
		enumsByName:    map[string]*Enum{},
		messagesByName: map[string]*Message{},
		messagesByID:   map[byte]*Message{},
	}

	for _, e := range doc.Enums {
		if _, dup := s.enumsByName[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate enum name %q", ErrInvalidSchema, e.Name)
		}
		enum := &Enum{Name: e.Name, Description: e.Description}
		seen := map[byte]bool{}
		for _, v := range e.Values {
			if seen[v.Value] {
				return nil, fmt.Errorf("%w: enum %q has duplicate value %d", ErrInvalidSchema, e.Name, v.Value)
			}
			seen[v.Value] = true
			enum.Values = append(enum.Values, EnumValue{Name: v.Name, Value: v.Value, Description: v.Description})
		}
		s.Enums = append(s.Enums, enum)
		s.enumsByName[e.Name] = enum
	}

	if doc.Header == nil {
		return nil, fmt.Errorf("%w: schema has no header", ErrInvalidSchema)
	}
	header, err := s.buildMessage(doc.Header, nil)
	if err != nil {
		return nil, err
	}
	if header.Name == "" {
		// The <header> element carries no name attribute; generated
		// artifacts need one for the HeaderEncoder/HeaderDecoder type
		// names.
		header.Name = "Header"
	}
	for _, name := range requiredHeaderFields {
		if !header.hasField(name) {
			return nil, fmt.Errorf("%w: header missing required field %q", ErrInvalidSchema, name)
		}
	}
	s.Header = header
	s.Header.FixedSize = fieldsSize(s, header.Required)

	for _, md := range doc.Messages {
		if _, dup := s.messagesByID[md.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate message id %d (%q)", ErrInvalidSchema, md.ID, md.Name)
		}
		if _, dup := s.messagesByName[md.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate message name %q", ErrInvalidSchema, md.Name)
		}
		m, err := s.buildMessage(md, s.Header)
		if err != nil {
			return nil, err
		}
		m.ID = md.ID
		m.FixedSize = s.Header.FixedSize + fieldsSize(s, m.Required)
		s.Messages = append(s.Messages, m)
		s.messagesByName[m.Name] = m
		s.messagesByID[m.ID] = m
	}

	for _, p := range doc.Properties {
		s.Properties = append(s.Properties, Property{Key: p.Name, Value: p.Value})
	}

	return s, nil
}

func (m *Message) hasField(name string) bool {
	for _, f := range m.Required {
		if f.Name == name {
			return true
		}
	}
	return false
}

func fieldsSize(s *Schema, fields []Field) int {
	total := 0
	for _, f := range fields {
		total += f.Size(s)
	}
	return total
}

func (s *Schema) buildMessage(md *MessageDoc, header *Message) (*Message, error) {
	m := &Message{
		Name:             md.Name,
		Entity:           md.Entity,
		BaseEntity:       md.BaseEntity,
		DecoderInterface: md.DecoderInterface,
		EncoderInterface: md.EncoderInterface,
		Description:      md.Description,
	}

	names := map[string]bool{}
	offset := 0
	if header != nil {
		offset = header.FixedSize
	}
	for _, fd := range md.Fields {
		if names[fd.Name] {
			return nil, fmt.Errorf("%w: message %q has duplicate field name %q", ErrInvalidSchema, md.Name, fd.Name)
		}
		names[fd.Name] = true

		ft, err := s.resolveType(fd.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: message %q field %q: %v", ErrInvalidSchema, md.Name, fd.Name, err)
		}
		if fd.PrimaryKey && !fd.Key {
			return nil, fmt.Errorf("%w: message %q field %q is primary-key but not key", ErrInvalidSchema, md.Name, fd.Name)
		}
		f := Field{
			Name:            fd.Name,
			Type:            ft,
			Required:        true,
			Header:          fd.Header,
			Version:         fd.Version,
			Metadata:        fd.Metadata,
			ImpliedDecimals: fd.ImpliedDecimals,
			PrimaryKey:      fd.PrimaryKey,
			Key:             fd.Key,
			ForeignKey:      fd.ForeignKey,
			Offset:          offset,
		}
		offset += f.Size(s)
		m.Required = append(m.Required, f)
	}

	optNames := map[string]bool{}
	for _, fd := range md.Optional {
		if optNames[fd.Name] {
			return nil, fmt.Errorf("%w: message %q has duplicate optional field name %q", ErrInvalidSchema, md.Name, fd.Name)
		}
		optNames[fd.Name] = true
		ft, err := s.resolveType(fd.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: message %q optional field %q: %v", ErrInvalidSchema, md.Name, fd.Name, err)
		}
		f := Field{
			ID:              fd.ID,
			Name:            fd.Name,
			Type:            ft,
			Required:        false,
			Version:         fd.Version,
			Metadata:        fd.Metadata,
			ImpliedDecimals: fd.ImpliedDecimals,
			ForeignKey:      fd.ForeignKey,
		}
		m.Optional = append(m.Optional, f)
	}

	return m, nil
}

func (s *Schema) resolveType(name string) (FieldType, error) {
	switch name {
	case "byte", "char", "short", "int", "float", "long", "double", "DirectBuffer":
		return FieldType{name}, nil
	}
	if _, ok := s.enumsByName[name]; ok {
		return FieldType{name}, nil
	}
	return FieldType{}, fmt.Errorf("unknown primitive type %q", name)
}

// MessageByName returns the message with the given name, or
// ErrBadMessageName.
func (s *Schema) MessageByName(name string) (*Message, error) {
	if m, ok := s.messagesByName[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", wire.ErrBadMessageName, name)
}

// MessageByID returns the message with the given wire message-type byte.
func (s *Schema) MessageByID(id byte) (*Message, bool) {
	m, ok := s.messagesByID[id]
	return m, ok
}

// MessageNames returns every message name, including the header, in
// schema declaration order.
func (s *Schema) MessageNames() []string {
	names := make([]string, 0, len(s.Messages)+1)
	names = append(names, s.Header.Name)
	for _, m := range s.Messages {
		names = append(names, m.Name)
	}
	return names
}

// EnumByName returns the enum with the given name.
func (s *Schema) EnumByName(name string) (*Enum, bool) {
	e, ok := s.enumsByName[name]
	return e, ok
}

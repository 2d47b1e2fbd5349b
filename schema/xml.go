// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Document mirrors the schema XML root element: prefix, package, and
// version attributes, a <header>, and any number of <enum>, <message>,
// and <property> children. It is a thin encoding/xml struct-tag
// unmarshal, not a hand-rolled parser.
type Document struct {
	XMLName     xml.Name      `xml:"schema"`
	Prefix      string        `xml:"prefix,attr"`
	Package     string        `xml:"package,attr"`
	Version     int           `xml:"version,attr"`
	Description string        `xml:"description,attr"`
	Header      *MessageDoc   `xml:"header"`
	Enums       []EnumDoc     `xml:"enum"`
	Messages    []*MessageDoc `xml:"message"`
	Properties  []PropertyDoc `xml:"property"`
}

// PropertyDoc is one <property name value/> element.
type PropertyDoc struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// EnumValueDoc is one <value name value description/> element.
type EnumValueDoc struct {
	Name        string `xml:"name,attr"`
	Value       byte   `xml:"value,attr"`
	Description string `xml:"description,attr"`
}

// EnumDoc is one <enum> element.
type EnumDoc struct {
	Name        string         `xml:"name,attr"`
	Description string         `xml:"description,attr"`
	Values      []EnumValueDoc `xml:"value"`
}

// FieldDoc is one <field> or <optional> element.
type FieldDoc struct {
	ID              byte   `xml:"id,attr"`
	Name            string `xml:"name,attr"`
	Type            string `xml:"type,attr"`
	Description     string `xml:"description,attr"`
	Header          bool   `xml:"header,attr"`
	Version         byte   `xml:"version,attr"`
	Metadata        string `xml:"metadata,attr"`
	ImpliedDecimals int    `xml:"implied-decimals,attr"`
	PrimaryKey      bool   `xml:"primary-key,attr"`
	Key             bool   `xml:"key,attr"`
	ForeignKey      string `xml:"foreign-key,attr"`
}

// MessageDoc is one <message> or <header> element.
type MessageDoc struct {
	ID               byte       `xml:"id,attr"`
	Name             string     `xml:"name,attr"`
	Entity           string     `xml:"entity,attr"`
	BaseEntity       string     `xml:"base-entity,attr"`
	DecoderInterface string     `xml:"decoderInterface,attr"`
	EncoderInterface string     `xml:"encoderInterface,attr"`
	Description      string     `xml:"description,attr"`
	Fields           []FieldDoc `xml:"field"`
	Optional         []FieldDoc `xml:"optional"`
}

// Load parses r as a schema Document. It does not validate the document;
// call Build on the result to get an immutable, validated Schema.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return &doc, nil
}

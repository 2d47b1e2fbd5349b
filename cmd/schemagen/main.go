// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command schemagen reads a schema XML document and writes the Go
// source schema/codegen.go's templates produce: one encoder/decoder pair
// per message, one enum type per enum, a dispatcher, a provider, and a
// schema facade.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/solidcoredata/corebus/schema"
)

func main() {
	in := flag.String("in", "", "path to the schema XML document")
	out := flag.String("out", "", "output directory for generated Go source")
	pkg := flag.String("package", "", "Go package name for generated source")
	flag.Parse()

	if err := run(*in, *out, *pkg); err != nil {
		log.Fatal(err)
	}
}

func run(in, out, pkg string) error {
	if in == "" || out == "" || pkg == "" {
		return fmt.Errorf("schemagen: -in, -out, and -package are all required")
	}

	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("schemagen: opening %s: %w", in, err)
	}
	defer f.Close()

	doc, err := schema.Load(f)
	if err != nil {
		return fmt.Errorf("schemagen: parsing %s: %w", in, err)
	}

	s, err := schema.Build(doc)
	if err != nil {
		return fmt.Errorf("schemagen: building schema: %w", err)
	}

	if err := schema.Generate(s, out, pkg); err != nil {
		return fmt.Errorf("schemagen: generating %s: %w", out, err)
	}
	return nil
}

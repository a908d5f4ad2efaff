// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/consensys/go-huff/pkg/huff/ast"
	"github.com/consensys/go-huff/pkg/huff/parser"
	"github.com/consensys/go-huff/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// readSourceFile reads a single Huff file, rejecting it when it exceeds the
// configured size.
func readSourceFile(config Config, filename string) (*source.File, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, err
	} else if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", filename)
	} else if config.MaxSize != 0 && uint64(info.Size()) > uint64(config.MaxSize) {
		return nil, fmt.Errorf("%s: file too large (%d bytes, maximum is %d)", filename, info.Size(), config.MaxSize)
	}
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	log.WithFields(log.Fields{"file": filename, "bytes": len(bytes)}).Debug("read source file")
	//
	return source.NewSourceFile(filename, bytes), nil
}

// readSourceFiles reads every given file, exiting on the first which cannot
// be read.
func readSourceFiles(config Config, filenames []string) []*source.File {
	files := make([]*source.File, len(filenames))
	//
	for i, filename := range filenames {
		file, err := readSourceFile(config, filename)
		if err != nil {
			fmt.Println(err)
			os.Exit(exitIO)
		}
		//
		files[i] = file
	}
	//
	return files
}

// parseSourceFile parses a given file, logging some statistics.
func parseSourceFile(srcfile *source.File) (*ast.SourceFile, []source.SyntaxError) {
	start := time.Now()
	tree, errs := parser.Parse(srcfile)
	//
	log.WithFields(log.Fields{
		"file":    srcfile.Filename(),
		"items":   len(tree.Items),
		"errors":  len(errs),
		"elapsed": time.Since(start),
	}).Debug("parsed source file")
	//
	return tree, errs
}

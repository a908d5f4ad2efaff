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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-huff/pkg/huff/parser"
	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Uint("max-size", 0, "")
	cmd.Flags().String("color", "", "")
	//
	return cmd
}

func env(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func Test_Config_Defaults(t *testing.T) {
	config, err := resolveConfig(newTestCommand(), env(nil))
	require.NoError(t, err)
	assert.Equal(t, uint(defaultMaxSize), config.MaxSize)
	assert.Equal(t, "auto", config.Colour)
}

func Test_Config_Environment(t *testing.T) {
	config, err := resolveConfig(newTestCommand(), env(map[string]string{
		envMaxSize: "1024",
		envColour:  "never",
	}))
	require.NoError(t, err)
	assert.Equal(t, uint(1024), config.MaxSize)
	assert.False(t, config.Coloured())
}

func Test_Config_FlagsOverride(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Set("max-size", "10"))
	require.NoError(t, cmd.Flags().Set("color", "always"))
	//
	config, err := resolveConfig(cmd, env(map[string]string{envMaxSize: "1024", envColour: "never"}))
	require.NoError(t, err)
	assert.Equal(t, uint(10), config.MaxSize)
	assert.True(t, config.Coloured())
}

func Test_Config_Invalid(t *testing.T) {
	_, err := resolveConfig(newTestCommand(), env(map[string]string{envMaxSize: "lots"}))
	assert.ErrorContains(t, err, envMaxSize)
	//
	_, err = resolveConfig(newTestCommand(), env(map[string]string{envColour: "sometimes"}))
	assert.ErrorContains(t, err, "sometimes")
}

func Test_ReadSourceFile_TooLarge(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "big.huff")
	require.NoError(t, os.WriteFile(filename, []byte("#define constant A = 1"), 0o600))
	//
	_, err := readSourceFile(Config{MaxSize: 4}, filename)
	assert.ErrorContains(t, err, "file too large")
	//
	srcfile, err := readSourceFile(Config{MaxSize: 1024}, filename)
	require.NoError(t, err)
	assert.Equal(t, filename, srcfile.Filename())
}

func Test_ReadSourceFile_Missing(t *testing.T) {
	_, err := readSourceFile(Config{}, filepath.Join(t.TempDir(), "missing.huff"))
	assert.Error(t, err)
}

func syntaxErrors(t *testing.T, text string) []source.SyntaxError {
	_, errs := parser.Parse(source.NewSourceFile("main.huff", []byte(text)))
	require.Len(t, errs, 1)
	//
	return errs
}

func Test_PrintSyntaxError(t *testing.T) {
	var out strings.Builder
	//
	printSyntaxErrors(&out, syntaxErrors(t, "#define constant = 1"), 0)
	assert.Equal(t, "main.huff:1:18: ExpectedIdentifier: expected identifier, found \"=\"\n"+
		"\n"+
		"#define constant = 1\n"+
		"                 ^\n", out.String())
}

func Test_PrintSyntaxError_Tabs(t *testing.T) {
	var out strings.Builder
	//
	printSyntaxErrors(&out, syntaxErrors(t, "\t#define constant = 1"), 0)
	lines := strings.Split(out.String(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "\t"+strings.Repeat(" ", 17)+"^", lines[3])
}

func Test_PrintSyntaxError_Clipped(t *testing.T) {
	var out strings.Builder
	//
	printSyntaxErrors(&out, syntaxErrors(t, "#define constant = 1"), 10)
	lines := strings.Split(out.String(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "tant = 1", lines[2])
	assert.Equal(t, "     ^", lines[3])
}

func Test_CheckSourceFiles(t *testing.T) {
	var out strings.Builder
	//
	files := []*source.File{
		source.NewSourceFile("good.huff", []byte("#define constant A = 1\n#define constant B = 2")),
		source.NewSourceFile("bad.huff", []byte("#define macro M() = takes(0) {")),
	}
	//
	ok := checkSourceFiles(&out, files, 0)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "good.huff: 2 items, ok\n")
	assert.Contains(t, out.String(), "bad.huff: 1 items, 1 errors\n")
	assert.Contains(t, out.String(), "UnbalancedBraces")
}

func Test_PrintTokens(t *testing.T) {
	var out strings.Builder
	//
	ok := printTokens(&out, source.NewSourceFile("main.huff", []byte("#define macro")), false)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "1:1\t0-7\t\"#define\"\t\"#define\"\n")
	assert.Contains(t, out.String(), "1:9\t8-13\tidentifier\t\"macro\"\n")
	assert.NotContains(t, out.String(), "whitespace")
	//
	out.Reset()
	printTokens(&out, source.NewSourceFile("main.huff", []byte("#define macro")), true)
	assert.Contains(t, out.String(), "1:8\t7-8\twhitespace\t\" \"\n")
}

func Test_PrintTokens_Malformed(t *testing.T) {
	var out strings.Builder
	//
	ok := printTokens(&out, source.NewSourceFile("main.huff", []byte("\"open")), false)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "UnterminatedString")
}

func Test_SyntaxErrorsToJson(t *testing.T) {
	errs := syntaxErrors(t, "/* é */ #define constant = 1")
	array := syntaxErrorsToJson(errs)
	//
	require.Len(t, array, 1)
	assert.Equal(t, "ExpectedIdentifier", array[0]["kind"])
	assert.Equal(t, 26, array[0]["start"])
	assert.Equal(t, 27, array[0]["end"])
	assert.Equal(t, 1, array[0]["line"])
	assert.Equal(t, 26, array[0]["column"])
	assert.Equal(t, "main.huff", array[0]["file"])
}

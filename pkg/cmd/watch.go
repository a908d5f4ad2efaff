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
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/consensys/go-huff/pkg/util/source"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [flags] file1.huff file2.huff ...",
	Short: "Check Huff files whenever they change on disk.",
	Long: `Check one or more Huff files, and then check each one again whenever it
is written.  Runs until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(exitFailure)
		}
		//
		config := getConfig(cmd)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		//
		defer stop()
		//
		if err := watchFiles(ctx, config, args); err != nil {
			fmt.Println(err)
			os.Exit(exitIO)
		}
	},
}

// watchFiles checks each file once and then again on every write, until the
// context is cancelled.  Directories are watched rather than files, since
// many editors save by replacing a file.
func watchFiles(ctx context.Context, config Config, filenames []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	//
	defer w.Close()
	//
	watched := make(map[string]string)
	//
	for _, filename := range filenames {
		abs, err := filepath.Abs(filename)
		if err != nil {
			return err
		}
		//
		watched[abs] = filename
		//
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return err
		}
		//
		recheck(config, filename)
	}
	//
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			//
			filename, ok := watched[ev.Name]
			if ok && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				log.WithFields(log.Fields{"file": filename, "op": ev.Op.String()}).Debug("file changed")
				recheck(config, filename)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			//
			log.WithError(err).Warn("watch error")
		}
	}
}

// recheck checks a single file.  Failing to read it is reported, but not
// fatal, since the file may be mid-way through being replaced.
func recheck(config Config, filename string) {
	srcfile, err := readSourceFile(config, filename)
	if err != nil {
		fmt.Println(err)
		return
	}
	//
	checkSourceFiles(os.Stdout, []*source.File{srcfile}, terminalWidth())
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

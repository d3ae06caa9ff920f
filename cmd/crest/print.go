package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"crest/internal/treewire"
)

var printCmd = &cobra.Command{
	Use:   "print file.tree [file.tree...]",
	Short: "Reconstruct source text from serialized trees",
	Long:  `Print decodes serialized syntax trees and emits the exact source text they represent, trivia included`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	// Декодируем файлы параллельно, выводим последовательно.
	texts := make([]string, len(args))

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			text, err := reconstructFile(path)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, text := range texts {
		fmt.Fprint(out, text)
	}
	return nil
}

func reconstructFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open tree file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	node, err := treewire.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return node.Text(), nil
}

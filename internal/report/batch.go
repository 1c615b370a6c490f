package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/credit"
)

// defaultConcurrency caps parallel dossier loads when the builder does
// not set its own limit.
const defaultConcurrency = 4

func (b *Builder) concurrency() int {
	if b.Concurrency > 0 {
		return b.Concurrency
	}
	return defaultConcurrency
}

// BuildDir analyzes every dossier file (*.json) in a directory and
// returns the reports sorted by client ID. The first failing file
// aborts the whole batch; its path is carried in the error.
func (b *Builder) BuildDir(ctx context.Context, dir string) ([]*analytics.ClientReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dossier directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency())

	reports := make([]*analytics.ClientReport, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := credit.LoadDossier(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = b.Build(d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].ClientID < reports[j].ClientID
	})
	return reports, nil
}

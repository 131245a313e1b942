package hub

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/promptspec/promptspec/pkg/catalog"
	"github.com/promptspec/promptspec/pkg/events"
)

// RemoteSpec is a spec file fetched from the hub repository.
type RemoteSpec struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

// List returns the spec files under dir in the hub repository. Only files
// ending in .promptspec.md are returned; other content is ignored.
func (c *Client) List(ctx context.Context, owner, repo, dir string) ([]RemoteSpec, error) {
	_, contents, _, err := c.inner.Repositories.GetContents(ctx, owner, repo, dir, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s/%s/%s: %w", owner, repo, dir, err)
	}

	var specs []RemoteSpec
	for _, entry := range contents {
		if entry.GetType() != "file" || !IsSpecFile(entry.GetName()) {
			continue
		}
		specs = append(specs, RemoteSpec{
			Name: entry.GetName(),
			Path: entry.GetPath(),
		})
	}
	return specs, nil
}

// Fetch downloads the content of a single spec file.
func (c *Client) Fetch(ctx context.Context, owner, repo, path string) (RemoteSpec, error) {
	file, _, _, err := c.inner.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return RemoteSpec{}, fmt.Errorf("fetching %s/%s/%s: %w", owner, repo, path, err)
	}
	if file == nil {
		return RemoteSpec{}, fmt.Errorf("%s/%s/%s is not a file", owner, repo, path)
	}

	content, err := file.GetContent()
	if err != nil {
		return RemoteSpec{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return RemoteSpec{Name: file.GetName(), Path: file.GetPath(), Content: content}, nil
}

// Syncer downloads hub specs into a local directory. Bus is optional.
type Syncer struct {
	Client *Client
	Bus    events.EventBus
}

// Sync fetches every spec under dir in the hub repository and writes it to
// destDir, overwriting existing files. It returns the local paths written.
func (s *Syncer) Sync(ctx context.Context, owner, repo, dir, destDir string) ([]string, error) {
	s.publish(events.NewEvent(events.EventHubFetchStart,
		events.ScanEventData{Dirs: []string{owner + "/" + repo + "/" + dir}}))

	specs, err := s.Client.List(ctx, owner, repo, dir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", destDir, err)
	}

	var written []string
	for _, spec := range specs {
		fetched, err := s.Client.Fetch(ctx, owner, repo, spec.Path)
		if err != nil {
			return written, err
		}
		local := filepath.Join(destDir, fetched.Name)
		if err := os.WriteFile(local, []byte(fetched.Content), 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", local, err)
		}
		written = append(written, local)
		s.publish(events.NewEvent(events.EventHubSpecFetched,
			events.SpecEventData{Path: local, Title: fetched.Name}))
	}

	s.publish(events.NewEvent(events.EventHubFetchEnd,
		events.ScanEventData{Count: len(written)}))
	return written, nil
}

func (s *Syncer) publish(event events.Event) {
	if s.Bus != nil {
		s.Bus.Publish(event)
	}
}

// IsSpecFile reports whether a filename looks like a prompt spec.
func IsSpecFile(name string) bool {
	return strings.HasSuffix(name, catalog.SpecSuffix)
}

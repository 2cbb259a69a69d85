package schema

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
	"github.com/teranos/protodts/errors"
	"github.com/teranos/protodts/logger"
)

// LoadOptions controls how schema sources are resolved.
type LoadOptions struct {
	// Pwd resolves relative sources; defaults to the working directory
	Pwd string
	// CacheDir receives fetched remote documents; a temp dir is used (and removed) when empty
	CacheDir string
	// HTTPClient fetches http and https sources; go-getter's default client when nil
	HTTPClient *http.Client
}

// LoadFile reads and decodes one local schema document.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema %s", path)
	}
	doc, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load schema %s", path)
	}
	doc.Source = path
	return doc, nil
}

// Load resolves every source (local path or any go-getter URL: https, git,
// s3, gcs, ...), decodes it and concatenates the domain lists in source order.
func Load(ctx context.Context, sources []string, opts LoadOptions) (*Schema, error) {
	if len(sources) == 0 {
		return nil, errors.WithHint(
			errors.NewInvalidSchemaError("no schema sources given"),
			"set schema.sources in protodts.toml or pass --source")
	}

	pwd := opts.Pwd
	if pwd == "" {
		var err error
		if pwd, err = os.Getwd(); err != nil {
			pwd = "."
		}
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		dir, err := os.MkdirTemp("", "protodts-schema-*")
		if err != nil {
			return nil, errors.Wrap(err, "failed to create schema cache directory")
		}
		defer os.RemoveAll(dir)
		cacheDir = dir
	}

	docs := make([]*Document, 0, len(sources))
	for i, src := range sources {
		local, err := resolveSource(ctx, src, pwd, cacheDir, i, getters(opts.HTTPClient))
		if err != nil {
			return nil, err
		}
		doc, err := LoadFile(local)
		if err != nil {
			return nil, err
		}
		doc.Source = src
		logger.Debugw("Loaded schema document",
			"source", src,
			"domains", len(doc.Domains),
			"version", doc.Version.String())
		docs = append(docs, doc)
	}

	s := New(docs...)
	logger.Infow("Schema loaded", "documents", len(docs), "domains", len(s.Domains))
	return s, nil
}

// LocalPaths returns the sources that resolve to files on disk, absolute.
// Remote sources are skipped; the watcher uses this to pick what to watch.
func LocalPaths(sources []string, pwd string) []string {
	if pwd == "" {
		pwd, _ = os.Getwd()
	}
	var paths []string
	for _, src := range sources {
		detected, err := getter.Detect(src, pwd, getter.Detectors)
		if err != nil {
			continue
		}
		if p, ok := localPath(detected); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

// resolveSource returns a local file path for src, fetching it when remote.
func resolveSource(ctx context.Context, src, pwd, cacheDir string, index int, getters map[string]getter.Getter) (string, error) {
	detected, err := getter.Detect(src, pwd, getter.Detectors)
	if err != nil {
		return "", errors.Wrapf(errors.Wrap(errors.ErrUnsupportedSource, err.Error()), "failed to detect source type of %s", src)
	}

	if p, ok := localPath(detected); ok {
		return p, nil
	}

	// Keep the original extension so FormatFromPath still works on the fetched copy
	dst := filepath.Join(cacheDir, fetchedName(src, index))
	logger.Infow("Fetching schema", "source", src, "detected", detected, "destination", dst)

	client := &getter.Client{
		Ctx:     ctx,
		Src:     detected,
		Dst:     dst,
		Pwd:     pwd,
		Mode:    getter.ClientModeFile,
		Getters: getters,
	}
	if err := client.Get(); err != nil {
		return "", errors.Wrapf(errors.Wrap(errors.ErrUnsupportedSource, err.Error()), "failed to fetch schema %s", src)
	}
	return dst, nil
}

// getters is go-getter's default set with http and https routed through client.
func getters(client *http.Client) map[string]getter.Getter {
	if client == nil {
		return getter.Getters
	}
	out := make(map[string]getter.Getter, len(getter.Getters))
	for scheme, g := range getter.Getters {
		out[scheme] = g
	}
	httpGetter := &getter.HttpGetter{Client: client, Netrc: true}
	out["http"] = httpGetter
	out["https"] = httpGetter
	return out
}

// localPath reports whether a detected go-getter URL points at the local filesystem.
func localPath(detected string) (string, bool) {
	u, err := url.Parse(detected)
	if err != nil {
		return "", false
	}
	if u.Scheme == "file" {
		return filepath.FromSlash(u.Path), true
	}
	if u.Scheme == "" {
		return detected, true
	}
	return "", false
}

// fetchedName builds a collision-free cache file name that keeps the source extension.
func fetchedName(src string, index int) string {
	name := src
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	base := path.Base(strings.TrimPrefix(name, "git::"))
	if base == "" || base == "." || base == "/" {
		base = "schema.json"
	}
	return fmt.Sprintf("%d-%s", index, base)
}

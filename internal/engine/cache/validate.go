package cache

import (
	"errors"
	"io/fs"
	"os"

	"github.com/xwine/fastpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// revalidate reconciles a cached entry with live filesystem state. It
// returns the fresh entry and whether the cached one was still current.
//
// The dispatch follows the entry's validation tier: a parsed manifest rides
// on the content check and is re-parsed when the content changed; a digest
// enables the content check; a bare timestamp enables the stat check; an
// entry with neither has only its existence re-checked. The two-tier
// mtime/digest check keeps the common unchanged-file path to a single stat,
// while the digest fallback stops a timestamp-only touch from cascading
// into rebuilds of every dependent module.
func (c *Cache) revalidate(path string, cached domain.FileEntry) (domain.FileEntry, bool, error) {
	switch {
	case cached.Package != nil:
		entry, hit, err := c.checkContent(path, cached)
		if err != nil || hit {
			return entry, hit, err
		}
		// Content changed under a parsed manifest: re-parse so the package
		// never goes stale relative to the content it was parsed from.
		if entry.Exists && entry.Digest != "" {
			pkg, perr := c.deps.Manifests.Parse(path, entry.Content)
			if perr != nil {
				return domain.FileEntry{}, false, perr
			}
			entry.Package = pkg
			entry.Level = domain.LevelManifest
		}
		return entry, false, nil

	case cached.Digest != "":
		return c.checkContent(path, cached)

	case cached.Mtime != 0:
		return c.checkStat(path, cached)

	default:
		exists, err := c.pathExists(path)
		if err != nil {
			return domain.FileEntry{}, false, err
		}
		return domain.ExistenceEntry(exists), false, nil
	}
}

// checkContent validates an entry whose content has been read before. An
// unchanged mtime is a hit without touching the content; a changed mtime
// falls back to the digest, streamed from disk so unchanged content is not
// loaded a second time. Only a digest mismatch replaces content.
func (c *Cache) checkContent(path string, cached domain.FileEntry) (domain.FileEntry, bool, error) {
	info, err := c.statPath(path)
	if err != nil {
		return domain.FileEntry{}, false, err
	}
	if info == nil {
		return domain.AbsentEntry(), false, nil
	}

	mtime := info.ModTime().UnixNano()
	if mtime == cached.Mtime {
		return cached, true, nil
	}

	digest, err := c.deps.Digests.DigestFile(path)
	if err != nil {
		return domain.FileEntry{}, false, err
	}
	if digest == cached.Digest {
		// Timestamp bumped but content identical (touch, checkout): keep
		// the entry, refresh the stat fields.
		cached.Mtime = mtime
		cached.Kind = kindOf(info)
		return cached, true, nil
	}

	content, err := readFile(path)
	if err != nil {
		return domain.FileEntry{}, false, err
	}

	return domain.FileEntry{
		Level:   domain.LevelContent,
		Exists:  true,
		Mtime:   mtime,
		Kind:    kindOf(info),
		Digest:  c.deps.Digests.DigestContent(content),
		Content: content,
	}, false, nil
}

// checkStat validates a stat-only entry. The content is never read here:
// a changed mtime just refreshes the stat fields and reports a miss.
func (c *Cache) checkStat(path string, cached domain.FileEntry) (domain.FileEntry, bool, error) {
	info, err := c.statPath(path)
	if err != nil {
		return domain.FileEntry{}, false, err
	}
	if info == nil {
		return domain.AbsentEntry(), false, nil
	}

	mtime := info.ModTime().UnixNano()
	if mtime == cached.Mtime {
		return cached, true, nil
	}

	return domain.FileEntry{
		Level:  domain.LevelStat,
		Exists: true,
		Mtime:  mtime,
		Kind:   kindOf(info),
	}, false, nil
}

// promote loads whatever the requested level needs beyond what the entry
// already carries. Validation decides currency; promote only fills in data
// for existing paths. Content is loaded for regular files only.
func (c *Cache) promote(path string, entry domain.FileEntry, want domain.Level) (domain.FileEntry, error) {
	if !entry.Exists || entry.Level >= want {
		return entry, nil
	}

	if entry.Level < domain.LevelStat {
		info, err := c.statPath(path)
		if err != nil {
			return domain.FileEntry{}, err
		}
		if info == nil {
			// The path vanished between the existence check and the stat.
			return domain.AbsentEntry(), nil
		}
		entry.Level = domain.LevelStat
		entry.Mtime = info.ModTime().UnixNano()
		entry.Kind = kindOf(info)
	}

	if want >= domain.LevelContent && entry.Level < domain.LevelContent && entry.Kind == domain.FileRegular {
		content, err := readFile(path)
		if err != nil {
			return domain.FileEntry{}, err
		}
		entry.Level = domain.LevelContent
		entry.Content = content
		entry.Digest = c.deps.Digests.DigestContent(content)
	}

	return entry, nil
}

// statPath stats a path, mapping absence to a nil info instead of an error.
// Any other stat failure propagates; this layer does not retry.
func (c *Cache) statPath(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	return info, nil
}

func (c *Cache) pathExists(path string) (bool, error) {
	info, err := c.statPath(path)
	if err != nil {
		return false, err
	}
	return info != nil, nil
}

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return content, nil
}

func kindOf(info os.FileInfo) domain.FileKind {
	switch {
	case info.IsDir():
		return domain.FileDirectory
	case info.Mode().IsRegular():
		return domain.FileRegular
	default:
		return domain.FileOther
	}
}

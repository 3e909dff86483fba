package main

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// staticPageData is the page for static hosting. Skill filtering, the typing
// effect and the theme toggle run in the browser; the contact form is
// replaced by a pointer to the live site.
func (s *server) staticPageData() PageData {
	data := s.pageData(ThemeSystem)
	data.Static = true
	data.Skills.Static = true
	return data
}

// exportSite renders the static page into outDir/index.html and copies the
// asset directories that exist next to it.
func (s *server) exportSite(outDir string, assetDirs ...string) error {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outDir, err)
	}

	indexPath := filepath.Join(outDir, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", indexPath, err)
	}
	defer f.Close()

	if err := s.tmpl.ExecuteTemplate(f, "index.html", s.staticPageData()); err != nil {
		return fmt.Errorf("failed to render index.html: %w", err)
	}
	log.Printf("Generated %s", indexPath)
	if s.cfg.BaseURL == "" {
		log.Println("WARNING: SITE_BASE_URL is not set; the exported contact section cannot link to the live form.")
	}

	for _, dir := range assetDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			log.Printf("Asset directory '%s' not found, skipping copy.", dir)
			continue
		}
		dst := filepath.Join(outDir, filepath.Base(dir))
		if err := copyDirContents(dir, dst); err != nil {
			return fmt.Errorf("failed to copy %s: %w", dir, err)
		}
	}
	return nil
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			return os.MkdirAll(dstPath, os.ModePerm)
		}
		return copyFile(path, dstPath)
	})
}

func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}

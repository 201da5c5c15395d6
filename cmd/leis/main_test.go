package main_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/leis"
	main "github.com/fwojciec/leis/cmd/leis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pagesDir = "testdata/pages"

func run(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	m := main.NewMain()
	m.DBPath = dbPath

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Parse(t *testing.T) {
	t.Parallel()

	t.Run("prints record as text", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "unused.db", "parse", filepath.Join(pagesDir, "leis", "lei-complementar-122-2019.html"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(stdout, "# LEI COMPLEMENTAR Nº 122, DE 22 DE FEVEREIRO DE 2019\n"))
		assert.Contains(t, stdout, "Category: leis")
		assert.Contains(t, stdout, "Document: https://leis.s3.amazonaws.com/")
	})

	t.Run("prints record as JSON with category override", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "unused.db", "parse", "--json", "-c", "Decretos",
			filepath.Join(pagesDir, "decretos", "decreto-1-1984.html"))
		require.NoError(t, err)

		var rec leis.LegalRecord
		require.NoError(t, json.Unmarshal([]byte(stdout), &rec))
		assert.Equal(t, "DECRETO Nº 1/84, de 05 de janeiro de 1984", rec.Title)
		assert.Equal(t, "Decretos", rec.Category)
		assert.Nil(t, rec.DocumentLink)
	})

	t.Run("reports missing title", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(pagesDir, "leis", "sem-titulo.html")
		_, stderr, err := run(t, "unused.db", "parse", path)
		require.ErrorIs(t, err, leis.ErrTitleNotFound)
		assert.Contains(t, stderr, "title not found in file "+path)
	})

	t.Run("does not create database", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "leis.db")
		_, _, err := run(t, dbPath, "parse", filepath.Join(pagesDir, "decretos", "decreto-1-1984.html"))
		require.NoError(t, err)

		_, statErr := os.Stat(dbPath)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestMain_Inspect(t *testing.T) {
	t.Parallel()

	t.Run("reports complete template", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "unused.db", "inspect", filepath.Join(pagesDir, "leis", "lei-complementar-122-2019.html"))
		require.NoError(t, err)
		assert.Contains(t, stdout, "download link:  yes")
		assert.Contains(t, stdout, "All mandatory fields present.")
	})

	t.Run("reports missing fields", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "unused.db", "inspect", filepath.Join(pagesDir, "leis", "sem-titulo.html"))
		require.Error(t, err)
		assert.Equal(t, leis.EINVALID, leis.ErrorCode(err))
		assert.Contains(t, stdout, "heading:        no (0 h2)")
		assert.Contains(t, stdout, "Missing: title")
	})

	t.Run("notes headings that span lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "multilinha.html")
		page := "<h2>LEI N 1,\nDE 2019</h2><br>Resumo.<br><br><img>\n<p><br><br><br>Texto.<p><img>"
		require.NoError(t, os.WriteFile(path, []byte(page), 0644))

		stdout, _, err := run(t, "unused.db", "inspect", path)
		require.Error(t, err)
		assert.Contains(t, stdout, "heading:        no (1 h2)")
		assert.Contains(t, stdout, "every h2 spans more than one line")
		assert.Contains(t, stdout, "Missing: title\n")
	})
}

func TestMain_ImportAndQuery(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "leis.db")

	stdout, stderr, err := run(t, dbPath, "import", pagesDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Found 3 pages")
	assert.Contains(t, stdout, "Imported 2 records (0 duplicates, 1 failed)")
	assert.Contains(t, stderr, "skip ")
	assert.Contains(t, stderr, "sem-titulo.html")

	stdout, _, err = run(t, dbPath, "categories")
	require.NoError(t, err)
	assert.Equal(t, "decretos  1\nleis  1\n", stdout)

	stdout, _, err = run(t, dbPath, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "decretos  DECRETO Nº 1/84")
	assert.Contains(t, lines[1], "leis  LEI COMPLEMENTAR Nº 122")

	id := strings.Fields(lines[1])[0]
	stdout, _, err = run(t, dbPath, "show", id)
	require.NoError(t, err)
	assert.Contains(t, stdout, "# LEI COMPLEMENTAR Nº 122")
	assert.Contains(t, stdout, "Source: "+filepath.Join(pagesDir, "leis", "lei-complementar-122-2019.html"))

	stdout, _, err = run(t, dbPath, "list", "--category", "decretos")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))

	_, _, err = run(t, dbPath, "delete", id)
	require.NoError(t, err)

	_, stderr, err = run(t, dbPath, "show", id)
	require.Error(t, err)
	assert.Equal(t, leis.ENOTFOUND, leis.ErrorCode(err))
	assert.Contains(t, stderr, "not found")

	_, _, err = run(t, dbPath, "delete", "--category", "decretos")
	require.NoError(t, err)

	stdout, _, err = run(t, dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No records found")
}

func TestMain_Convert(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON Lines", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "leis.jsonl")
		_, stderr, err := run(t, "unused.db", "convert", pagesDir, "-f", "jsonl", "-o", out)
		require.NoError(t, err)
		assert.Contains(t, stderr, "Wrote 2 records")

		f, err := os.Open(out)
		require.NoError(t, err)
		defer f.Close()

		var titles []string
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			var rec leis.LegalRecord
			require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
			titles = append(titles, rec.Title)
		}
		require.NoError(t, sc.Err())
		assert.Equal(t, []string{
			"DECRETO Nº 1/84, de 05 de janeiro de 1984",
			"LEI COMPLEMENTAR Nº 122, DE 22 DE FEVEREIRO DE 2019",
		}, titles)
	})

	t.Run("writes JSON Lines to stdout", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "unused.db", "convert", pagesDir, "--output=-")
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(stdout, "\n"))
		assert.NotContains(t, stdout, "Found")
	})

	t.Run("writes XML", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "leis.xml")
		_, _, err := run(t, "unused.db", "convert", pagesDir, "-f", "xml", "-o", out)
		require.NoError(t, err)

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromFile(out))
		records := doc.FindElements("/records/record")
		require.Len(t, records, 2)
		assert.Equal(t, "decretos", records[0].SelectAttrValue("category", ""))
	})

	t.Run("writes Markdown tree", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "leis")
		_, _, err := run(t, "unused.db", "convert", pagesDir, "-f", "md", "-o", out)
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(out, "leis", "lei-complementar-122-2019.md"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(out, "decretos", "decreto-1-1984.md"))
		require.NoError(t, err)
		_, err = os.Stat(out + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "unused.db", "convert", pagesDir, "-f", "csv", "-o", "x")
		require.Error(t, err)
	})

	t.Run("removes partial output when discovery fails", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "leis.jsonl")
		_, _, err := run(t, "unused.db", "convert", "testdata/missing", "-o", out)
		require.Error(t, err)

		_, statErr := os.Stat(out)
		assert.True(t, os.IsNotExist(statErr))
	})
}

package xliff

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/XliffCapsule/core/errors"
	"github.com/FocuswithJustin/XliffCapsule/internal/fileutil"
)

// readDocumentFile reads a document from disk, decompressing .xz and .gz
// suffixed files transparently.
func readDocumentFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("document", path)
		}
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		reader = xzr
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		defer gzr.Close()
		reader = gzr
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return data, nil
}

// writeDocumentFile writes a document to disk atomically, creating missing
// parent directories and compressing when the destination carries a .xz or
// .gz suffix.
func writeDocumentFile(path string, data []byte) error {
	switch {
	case strings.HasSuffix(path, ".xz"):
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return errors.NewIO("compress", path, err)
		}
		if _, err := w.Write(data); err != nil {
			return errors.NewIO("compress", path, err)
		}
		if err := w.Close(); err != nil {
			return errors.NewIO("compress", path, err)
		}
		data = buf.Bytes()
	case strings.HasSuffix(path, ".gz"):
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return errors.NewIO("compress", path, err)
		}
		if err := w.Close(); err != nil {
			return errors.NewIO("compress", path, err)
		}
		data = buf.Bytes()
	}

	if err := fileutil.WriteAtomic(path, data, 0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}

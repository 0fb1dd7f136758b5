package font

import "os"
import "io"
import "io/fs"
import "errors"
import "strings"
import "compress/gzip"

import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](), but also including the font name in the
// returned values. The bytes must not be modified while the font is
// in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	fontName, err := GetName(newFont)
	return newFont, fontName, err
}

// Attempts to parse the font at the given filepath and returns it along
// its name and any possible error. Supported formats are .ttf, .otf,
// .ttf.gz and .otf.gz.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	// check font path validity
	knownFontExt, gzipped := acceptFontPath(path)
	if !knownFontExt {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	// open font file
	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	return parseFontFileAndClose(file, gzipped)
}

// Same as [ParseFromPath](), but for arbitrary filesystems
// (e.g. embedded assets).
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	// check font path validity
	knownFontExt, gzipped := acceptFontPath(path)
	if !knownFontExt {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	// open font file
	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseFontFileAndClose(file, gzipped)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser, gzipped bool) (*sfnt.Font, string, error) {
	fileCloser := onceCloser{ file, false }
	defer fileCloser.Close()

	// detect gzipping
	var reader io.ReadCloser
	var readerCloser *onceCloser
	if gzipped {
		gzipReader, err := gzip.NewReader(file)
		if err != nil { return nil, "", err }
		reader = gzipReader
		readerCloser = &onceCloser{ gzipReader, false }
		defer readerCloser.Close()
	} else {
		reader = file
		readerCloser = &fileCloser
	}

	// read font bytes
	fontBytes, err := io.ReadAll(reader)
	if err != nil { return nil, "", err }
	err = readerCloser.Close()
	if err != nil { return nil, "", err }
	err = fileCloser.Close()
	if err != nil { return nil, "", err }

	// create font from bytes and get name
	return ParseFromBytes(fontBytes)
}

// onceCloser makes it easier to both defer closes (to cover for early error
// returns) and check close errors manually when done with other operations,
// without having to suffer from "file already closed" and similar issues.
type onceCloser struct { closer io.Closer ; alreadyClosed bool }
func (self *onceCloser) Close() error {
	if self.alreadyClosed { return nil }
	self.alreadyClosed = true
	return self.closer.Close()
}

// The first bool returns whether to accept the font path or not.
// The second indicates if the font is gzipped or not.
func acceptFontPath(path string) (bool, bool) {
	gzipped := false
	if strings.HasSuffix(path, ".gz") {
		gzipped = true
		path = path[0 : len(path) - 3]
	}

	validExt := (strings.HasSuffix(path, ".ttf") || strings.HasSuffix(path, ".otf"))
	return validExt, gzipped
}

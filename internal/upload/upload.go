// Package upload reads uploaded image bytes into a data URI. The read is a
// one-shot asynchronous operation: the returned channel delivers exactly one
// result and is then closed. A consumer that goes away simply abandons the
// channel; there is no cancellation for an in-flight read.
package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// MaxImageBytes is the upload size ceiling.
const MaxImageBytes = 5 * 1024 * 1024

// Uploads must carry a MIME type with this prefix.
const imageMIMEPrefix = "image/"

var (
	// ErrNotImage indicates a content type outside the image/ family.
	ErrNotImage = errors.New("upload: file is not an image")
	// ErrTooLarge indicates a file over the size ceiling.
	ErrTooLarge = errors.New("upload: image exceeds the size limit")
)

// Result is the single outcome of a file read.
type Result struct {
	// DataURI holds the base64 data URI of the uploaded bytes.
	DataURI string
	// Title is a display title derived from the file name.
	Title string
	// Err reports a validation or read failure.
	Err error
}

// Read starts reading the uploaded bytes and returns the channel on which
// the single result is delivered.
func Read(reader io.Reader, filename, contentType string) <-chan Result {
	results := make(chan Result, 1)
	go func() {
		defer close(results)
		results <- read(reader, filename, contentType)
	}()
	return results
}

func read(reader io.Reader, filename, contentType string) Result {
	if !strings.HasPrefix(contentType, imageMIMEPrefix) {
		return Result{Err: fmt.Errorf("%w: %s", ErrNotImage, contentType)}
	}

	// Read one byte past the ceiling so an oversized file is detected
	// without buffering all of it.
	data, err := io.ReadAll(io.LimitReader(reader, MaxImageBytes+1))
	if err != nil {
		return Result{Err: err}
	}
	if len(data) > MaxImageBytes {
		return Result{Err: ErrTooLarge}
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return Result{
		DataURI: fmt.Sprintf("data:%s;base64,%s", contentType, encoded),
		Title:   TitleFromFilename(filename),
	}
}

// TitleFromFilename derives a display title: the extension is dropped,
// hyphens and underscores become spaces, and each word is capitalized.
func TitleFromFilename(filename string) string {
	name := filename
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

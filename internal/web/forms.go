package web

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

const (
	imageDir     = "posts"
	maxImageSize = 5 << 20
)

// imageTypes are the detected content types accepted for uploads.
var imageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// postForm reads the post form, storing an uploaded image under MediaDir.
func (h *Handler) postForm(c echo.Context) (blog.PostForm, error) {
	form := blog.PostForm{
		Title:       c.FormValue("title"),
		Text:        c.FormValue("text"),
		PubDate:     c.FormValue("pub_date"),
		CategoryID:  optionalInt(c.FormValue("category")),
		LocationID:  optionalInt(c.FormValue("location")),
		IsPublished: checkbox(c.FormValue("is_published")),
		ClearImage:  checkbox(c.FormValue("image_clear")),
	}

	image, err := h.saveImage(c)
	if err != nil {
		return form, err
	}
	form.Image = image

	return form, nil
}

// optionalInt parses a select value. An unparsable value becomes id 0,
// which never matches a row and is reported as an invalid choice.
func optionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		id = 0
	}
	return &id
}

func checkbox(raw string) bool {
	switch strings.ToLower(raw) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// saveImage stores the "image" upload and returns its name relative to MediaDir.
func (h *Handler) saveImage(c echo.Context) (*string, error) {
	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch {
	case !imageExtensions[ext]:
		return nil, &blog.ValidationError{Fields: map[string]string{"image": "Upload a valid image."}}
	case file.Size > maxImageSize:
		return nil, &blog.ValidationError{Fields: map[string]string{"image": "The image is too large."}}
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if !mimetype.EqualsAny(mimetype.Detect(head).String(), imageTypes...) {
		return nil, &blog.ValidationError{Fields: map[string]string{"image": "Upload a valid image."}}
	}

	if err := os.MkdirAll(filepath.Join(h.opts.MediaDir, imageDir), 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	name := path.Join(imageDir, uuid.NewString()+ext)
	dst, err := os.Create(filepath.Join(h.opts.MediaDir, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.MultiReader(bytes.NewReader(head), src)); err != nil {
		return nil, fmt.Errorf("write image: %w", err)
	}

	return &name, nil
}

// discardImage removes a stored image that is no longer referenced.
func (h *Handler) discardImage(name *string) {
	if name == nil || *name == "" {
		return
	}

	p := filepath.Join(h.opts.MediaDir, filepath.FromSlash(*name))
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		h.log.Warn("failed to remove image", "path", p, "error", err)
	}
}

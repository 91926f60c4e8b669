// Package assets holds the image resources of the watchface.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"sync"
)

// ID identifies a resource.
type ID int

const (
	// Background is the dial drawn behind the hands.
	Background ID = iota + 1
)

var ErrUnknownResource = errors.New("assets: unknown resource")

var names = map[ID]string{
	Background: "background.png",
}

func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("resource(%d)", int(id))
}

// loaded is a decoded resource shared by its users.
type loaded struct {
	img  image.Image
	refs int
}

var (
	mu    sync.Mutex
	cache = make(map[ID]*loaded)
)

// Load returns the decoded resource identified by id. Loads of the
// same resource share one decoded image until every load has been
// released; the caller must not use the image after calling
// release. Calling release more than once has no effect.
func Load(id ID) (img image.Image, release func(), err error) {
	name, ok := names[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownResource, id)
	}
	mu.Lock()
	defer mu.Unlock()
	l, ok := cache[id]
	if !ok {
		img, err := decode(name)
		if err != nil {
			return nil, nil, err
		}
		l = &loaded{img: img}
		cache[id] = l
	}
	l.refs++
	var once sync.Once
	release = func() {
		once.Do(func() {
			mu.Lock()
			defer mu.Unlock()
			l.refs--
			if l.refs == 0 {
				delete(cache, id)
			}
		})
	}
	return l.img, release, nil
}

// loads returns the number of unreleased loads of id.
func loads(id ID) int {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := cache[id]; ok {
		return l.refs
	}
	return 0
}

func decode(name string) (image.Image, error) {
	f, err := images.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	return img, nil
}

//go:embed *.png
var images embed.FS

package fbdev

import (
	"fmt"
	"image"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	ioctlGetVScreenInfo = 0x4600
	ioctlGetFScreenInfo = 0x4602
)

type bitfield struct {
	offset, length, msbRight uint32
}

// varScreenInfo is struct fb_var_screeninfo.
type varScreenInfo struct {
	xres, yres               uint32
	xresVirtual, yresVirtual uint32
	xoffset, yoffset         uint32
	bitsPerPixel             uint32
	grayscale                uint32
	red, green, blue, transp bitfield
	nonstd                   uint32
	activate                 uint32
	height, width            uint32
	accelFlags               uint32
	pixclock                 uint32
	leftMargin, rightMargin  uint32
	upperMargin, lowerMargin uint32
	hsyncLen, vsyncLen       uint32
	sync, vmode, rotate      uint32
	colorspace               uint32
	reserved                 [4]uint32
}

// fixScreenInfo is struct fb_fix_screeninfo.
type fixScreenInfo struct {
	id           [16]byte
	smemStart    uintptr
	smemLen      uint32
	typ          uint32
	typeAux      uint32
	visual       uint32
	xpanstep     uint16
	ypanstep     uint16
	ywrapstep    uint16
	lineLength   uint32
	mmioStart    uintptr
	mmioLen      uint32
	accel        uint32
	capabilities uint16
	reserved     [2]uint16
}

// Open maps the framebuffer device at path.
func Open(path string) (*Display, error) {
	dev, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("fbdev: %w", err)
	}
	d, err := setup(dev)
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("fbdev: %s: %w", path, err)
	}
	return d, nil
}

func setup(dev *os.File) (*Display, error) {
	fd := int(dev.Fd())
	var vinfo varScreenInfo
	if err := ioctl(fd, "FBIOGET_VSCREENINFO", ioctlGetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		return nil, err
	}
	var finfo fixScreenInfo
	if err := ioctl(fd, "FBIOGET_FSCREENINFO", ioctlGetFScreenInfo, unsafe.Pointer(&finfo)); err != nil {
		return nil, err
	}
	var format Format
	switch vinfo.bitsPerPixel {
	case 16:
		format = RGB565
	case 32:
		format = XRGB8888
	default:
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupported, vinfo.bitsPerPixel)
	}
	mem, err := unix.Mmap(fd, 0, int(finfo.smemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("framebuffer mmap failed: %w", err)
	}
	size := image.Pt(int(vinfo.xres), int(vinfo.yres))
	d, err := newDisplay(mem, size, int(finfo.lineLength), format)
	if err != nil {
		unix.Munmap(mem)
		return nil, err
	}
	d.close = func() error {
		err := unix.Munmap(mem)
		if cerr := dev.Close(); err == nil {
			err = cerr
		}
		return err
	}
	return d, nil
}

func ioctl(fd int, name string, req uintptr, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg)); errno != 0 {
		return fmt.Errorf("ioctl(%s): %w", name, errno)
	}
	return nil
}

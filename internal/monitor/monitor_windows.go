//go:build windows

package monitor

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// ListMonitors returns the displays in enumeration order with 1-based indexes.
func ListMonitors() ([]Monitor, error) {
	var list []Monitor
	callback := syscall.NewCallback(func(hMonitor win.HMONITOR, _ win.HDC, _ *win.RECT, _ uintptr) uintptr {
		var info win.MONITORINFO
		info.CbSize = uint32(unsafe.Sizeof(info))
		if !win.GetMonitorInfo(hMonitor, &info) {
			return 1
		}
		r := info.RcMonitor
		list = append(list, Monitor{
			Index:   len(list) + 1,
			X:       int(r.Left),
			Y:       int(r.Top),
			W:       int(r.Right - r.Left),
			H:       int(r.Bottom - r.Top),
			Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
		})
		return 1
	})

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return list, nil
}

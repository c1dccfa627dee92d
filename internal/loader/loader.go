// Package loader reads problem instances. The primary format is the
// whitespace-separated text layout of the benchmark harness:
//
//	<w> <h> <nboxes> <proportion>
//	<x1> <y1> <x2> <y2> <p>     (nboxes times)
//
// Trailing content after the last box line is ignored. The same fields can
// also come from CSV (auto-detected delimiter) or XLSX files, dispatched on
// the file extension.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/boxkit/boxfinder/internal/model"
)

var log = logrus.WithField("module", "loader")

// ReadInstance loads and validates a problem instance from path.
func ReadInstance(path string) (*model.Instance, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return readCSV(data)
	case ".xlsx":
		return readExcel(path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return parseText(f)
	}
}

// parseText reads the whitespace-separated harness format.
func parseText(r io.Reader) (*model.Instance, error) {
	br := bufio.NewReader(r)

	var w, h, proportion float64
	var nboxes int
	if _, err := fmt.Fscan(br, &w, &h, &nboxes, &proportion); err != nil {
		return nil, fmt.Errorf("reading instance header: %w", err)
	}
	if nboxes < 0 {
		return nil, fmt.Errorf("%w: negative box count %d", model.ErrInvalidBox, nboxes)
	}

	boxes := make([]model.Box, 0, nboxes)
	for i := 0; i < nboxes; i++ {
		var x1, y1, x2, y2, p float64
		if _, err := fmt.Fscan(br, &x1, &y1, &x2, &y2, &p); err != nil {
			return nil, fmt.Errorf("reading box %d of %d: %w", i+1, nboxes, err)
		}
		b, err := model.NewBox(x1, y1, x2, y2, p)
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i+1, err)
		}
		boxes = append(boxes, b)
	}

	return finish(w, h, proportion, boxes)
}

// finish assembles and validates the instance, shared by all readers.
func finish(w, h, proportion float64, boxes []model.Box) (*model.Instance, error) {
	inst := model.NewInstance(w, h, proportion, boxes)
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"instance":   inst.ID,
		"bounding":   fmt.Sprintf("%gx%g", w, h),
		"nboxes":     len(boxes),
		"proportion": proportion,
		"objective":  inst.Objective().String(),
	}).Debug("instance loaded")
	return inst, nil
}

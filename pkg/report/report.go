// Package report writes machine-readable scan reports. The format is
// chosen by the target file's extension: .json, .yaml/.yml, or .xml.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dupfinder/pkg/errors"
	"github.com/arthur-debert/dupfinder/pkg/types"
)

// Group is one duplicate group in a report
type Group struct {
	Keeper    string   `json:"keeper" yaml:"keeper"`
	Redundant []string `json:"redundant" yaml:"redundant"`
}

// Report is the serialized outcome of one run
type Report struct {
	ScannedAt  time.Time `json:"scanned_at" yaml:"scanned_at"`
	Folder     string    `json:"folder" yaml:"folder"`
	Threshold  *float64  `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Groups     []Group   `json:"groups" yaml:"groups"`
	Identified int       `json:"identified" yaml:"identified"`

	// Removed and Failed are present only for delete-mode runs
	Removed *int `json:"removed,omitempty" yaml:"removed,omitempty"`
	Failed  *int `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// Build assembles a report from a frozen scan result and, in delete
// mode, the purge counts
func Build(result *types.ScanResult, folder string, threshold *float64, purge *types.PurgeResult) Report {
	rep := Report{
		ScannedAt:  time.Now().UTC(),
		Folder:     folder,
		Threshold:  threshold,
		Groups:     []Group{},
		Identified: result.TotalRedundant(),
	}
	for _, keeper := range result.Keepers() {
		group := result.Groups[keeper]
		rep.Groups = append(rep.Groups, Group{
			Keeper:    group.Keeper,
			Redundant: append([]string(nil), group.Redundant...),
		})
	}
	if purge != nil {
		removed := purge.Removed
		failed := len(purge.Failures)
		rep.Removed = &removed
		rep.Failed = &failed
	}
	return rep
}

// Write serializes the report to path in the format implied by its
// extension
func Write(path string, rep Report) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(rep, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(rep)
	case ".xml":
		data, err = marshalXML(rep)
	default:
		return errors.Newf(errors.ErrInvalidInput,
			"unsupported report format %q (use .json, .yaml or .xml)", filepath.Ext(path))
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite, "could not serialize report for %s", path)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrReportWrite, "could not write report to %s", path)
	}
	return nil
}

func marshalXML(rep Report) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("report")
	root.CreateAttr("scanned_at", rep.ScannedAt.Format(time.RFC3339))
	root.CreateAttr("folder", rep.Folder)
	if rep.Threshold != nil {
		root.CreateAttr("threshold", strconv.FormatFloat(*rep.Threshold, 'f', -1, 64))
	}

	groups := root.CreateElement("groups")
	for _, g := range rep.Groups {
		group := groups.CreateElement("group")
		group.CreateElement("keeper").SetText(g.Keeper)
		for _, path := range g.Redundant {
			group.CreateElement("redundant").SetText(path)
		}
	}

	summary := root.CreateElement("summary")
	summary.CreateAttr("identified", strconv.Itoa(rep.Identified))
	if rep.Removed != nil {
		summary.CreateAttr("removed", strconv.Itoa(*rep.Removed))
	}
	if rep.Failed != nil {
		summary.CreateAttr("failed", strconv.Itoa(*rep.Failed))
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// This file is part of ZGopher.
//
// ZGopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZGopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZGopher.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the top of every preferences file.
const WarningBoilerPlate = "; preferences file for ZGopher. edit with care"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the file and must contain at least
// one full-stop separating the section name from the value name.
func (dsk *Disk) Add(key string, p pref) error {
	if _, _, ok := splitKey(key); !ok {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p

	// command line values take priority over everything
	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	return nil
}

func (dsk *Disk) String() string {
	var s strings.Builder
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

func splitKey(key string) (string, string, bool) {
	section, name, ok := strings.Cut(key, ".")
	if !ok || section == "" || name == "" {
		return "", "", false
	}
	return section, name, true
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save current preference values to disk. Values in the file that have not
// been added to the Disk are preserved.
func (dsk *Disk) Save() error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Loose: true}, dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	for _, k := range dsk.keys() {
		section, name, _ := splitKey(k)
		cfg.Section(section).Key(name).SetValue(dsk.entries[k].String())
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\n", WarningBoilerPlate); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if _, err := cfg.WriteTo(f); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. A missing file is not an error. Values
// set on the command line are not overwritten.
func (dsk *Disk) Load() error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Loose: true}, dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	for _, k := range dsk.keys() {
		section, name, _ := splitKey(k)
		if !cfg.Section(section).HasKey(name) {
			continue
		}
		if isOverridden(k) {
			continue
		}
		if err := dsk.entries[k].Set(cfg.Section(section).Key(name).String()); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return nil
}

// Reset all preferences added to the Disk to their zero values.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}

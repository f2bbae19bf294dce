/*
github.com/tcrain/synodbench - Experimental project for measuring consensus decision latency.
Copyright (C) 2020 The project authors - tcrain

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

package types

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ToDisk stores item as indented json in folderPath/fileName.
func ToDisk(folderPath, fileName string, item interface{}) error {
	byt, err := json.MarshalIndent(item, "", "\t")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(folderPath, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(folderPath, fileName), byt, 0644)
}

// FromDisk loads a json formatted file into item.
func FromDisk(filePath string, item interface{}) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, item)
}

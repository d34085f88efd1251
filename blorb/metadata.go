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

package blorb

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Metadata is the bibliographic information from the iFiction record in the
// IFmd chunk.
type Metadata struct {
	Title        string
	Headline     string
	Author       string
	Genre        string
	Description  string
	Year         string
	Group        string
	CoverPicture int
}

type ifindex struct {
	Story struct {
		Bibliographic struct {
			Title          string `xml:"title"`
			Headline       string `xml:"headline"`
			Author         string `xml:"author"`
			Genre          string `xml:"genre"`
			Description    string `xml:"description"`
			FirstPublished string `xml:"firstpublished"`
			Group          string `xml:"group"`
		} `xml:"bibliographic"`
		Zcode struct {
			CoverPicture int `xml:"coverpicture"`
		} `xml:"zcode"`
	} `xml:"story"`
}

func readMetadata(data []uint8) (*Metadata, error) {
	var idx ifindex
	if err := xml.Unmarshal(data, &idx); err != nil {
		return nil, err
	}

	bib := idx.Story.Bibliographic
	return &Metadata{
		Title:        strings.TrimSpace(bib.Title),
		Headline:     strings.TrimSpace(bib.Headline),
		Author:       strings.TrimSpace(bib.Author),
		Genre:        strings.TrimSpace(bib.Genre),
		Description:  strings.TrimSpace(bib.Description),
		Year:         strings.TrimSpace(bib.FirstPublished),
		Group:        strings.TrimSpace(bib.Group),
		CoverPicture: idx.Story.Zcode.CoverPicture,
	}, nil
}

func (md *Metadata) String() string {
	s := strings.Builder{}
	field := func(name string, v string) {
		if v != "" {
			s.WriteString(fmt.Sprintf("%s: %s\n", name, v))
		}
	}
	field("title", md.Title)
	field("headline", md.Headline)
	field("author", md.Author)
	field("genre", md.Genre)
	field("year", md.Year)
	field("group", md.Group)
	field("description", md.Description)
	if md.CoverPicture != 0 {
		s.WriteString(fmt.Sprintf("cover picture: %d\n", md.CoverPicture))
	}
	return s.String()
}

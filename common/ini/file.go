package ini

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
)

const (
	DEFAULT_SECTION = "default"
)

var multilineReg = regexp.MustCompile(`^([\t\f ]+)(.*)`)

// File is a parsed ini document. Section and key names are case
// insensitive; the order they first appeared in is kept.
type File struct {
	dataSource  io.ReadCloser
	sections    map[string]*Section
	sectionList []string
}

// Load parses source, which may be a file name, a byte slice or a reader.
func Load(source interface{}) (*File, error) {
	s, err := parseSource(source)
	if err != nil {
		return nil, err
	}

	file := &File{
		dataSource: s,
		sections:   make(map[string]*Section),
	}
	if err = file.load(); err != nil {
		return nil, err
	}
	return file, nil
}

func Empty() *File {
	f, _ := Load([]byte{})
	return f
}

func parseSource(source interface{}) (io.ReadCloser, error) {
	switch s := source.(type) {
	case string:
		f, err := os.Open(s)
		if err != nil {
			return nil, err
		}
		return f, nil
	case []byte:
		return io.NopCloser(bytes.NewReader(s)), nil
	case io.ReadCloser:
		return s, nil
	case io.Reader:
		return io.NopCloser(s), nil
	default:
		return nil, fmt.Errorf("Load unknown source: %v", source)
	}
}

func (f *File) load() error {
	var (
		bufr    = bufio.NewReader(f.dataSource)
		section = f.NewSection(DEFAULT_SECTION)
		lineNo  = 0
		pending *Key
	)
	defer f.dataSource.Close()
	for {
		line, err := bufr.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		isEOF := err == io.EOF
		lineNo++

		// indented lines continue the previous key
		if pending != nil {
			if m := multilineReg.FindStringSubmatch(line); m != nil {
				if multi := readValue(m[2]); len(multi) > 0 {
					if len(pending.value) == 0 {
						pending.value = multi
					} else {
						pending.value += "\n" + multi
					}
				}
				if isEOF {
					break
				}
				continue
			}
			pending = nil
		}

		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		switch {
		case len(line) == 0, line[0] == ';', line[0] == '#':
		case line[0] == '[':
			lastIndex := strings.LastIndex(line, "]")
			if lastIndex < 0 {
				return fmt.Errorf("line %d: anomaly section: %s", lineNo, strings.TrimSpace(line))
			}
			name := strings.TrimSpace(line[1:lastIndex])
			if len(name) == 0 {
				return fmt.Errorf("line %d: anomaly section: %s", lineNo, strings.TrimSpace(line))
			}
			section = f.NewSection(name)
		default:
			index := strings.IndexAny(line, "=:")
			if index == 0 {
				return fmt.Errorf("line %d: section %s key empty", lineNo, section.Name())
			}
			if index < 0 {
				if i := strings.IndexAny(line, "#;"); i > -1 {
					line = line[:i]
				}
				section.NewKey(line, "")
				break
			}
			key, err := section.NewKey(line[:index], readValue(line[index+1:]))
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			pending = key
		}

		if isEOF {
			break
		}
	}

	return nil
}

func readValue(value string) string {
	if i := strings.IndexAny(value, "#;"); i > -1 {
		value = value[:i]
	}
	return strings.TrimSpace(value)
}

func (f *File) Sections() []*Section {
	sections := make([]*Section, 0, len(f.sectionList))
	for _, name := range f.sectionList {
		sections = append(sections, f.sections[name])
	}
	return sections
}

func (f *File) GetSection(name string) (*Section, error) {
	sec, ok := f.sections[strings.ToLower(name)]
	if !ok {
		return nil, errors.New(name + " section not found")
	}
	return sec, nil
}

func (f *File) HasSection(name string) bool {
	_, err := f.GetSection(name)
	return err == nil
}

// Section returns the named section, creating an empty one when missing.
func (f *File) Section(name string) *Section {
	return f.NewSection(name)
}

func (f *File) SectionString() []string {
	sections := make([]string, len(f.sectionList))
	copy(sections, f.sectionList)
	return sections
}

func (f *File) NewSection(name string) *Section {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := f.sections[name]; !ok {
		f.sections[name] = NewSection(name)
		f.sectionList = append(f.sectionList, name)
	}
	return f.sections[name]
}

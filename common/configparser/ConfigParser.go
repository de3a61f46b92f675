package configparser

import (
	"linspace/common/errors"
	"linspace/common/ini"
	"linspace/common/utils/file"
	"strconv"
	"strings"
)

// RawConfigParser is the parsed config file plus a record of which
// options have been read, so unknown options can be reported.
type RawConfigParser struct {
	fileconfig      *ini.File
	access_tracking map[string]interface{}
}

func NewRawConfigParser(fileconfig *ini.File) *RawConfigParser {
	if fileconfig == nil {
		fileconfig = ini.Empty()
	}
	return &RawConfigParser{
		fileconfig:      fileconfig,
		access_tracking: make(map[string]interface{}),
	}
}

// Read loads filename. A missing file is not an error and yields an empty
// config, so every option falls back to its default.
func Read(filename string) (*RawConfigParser, error) {
	exists, err := file.PathExists(filename)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigLoadCode, err)
	}
	if !exists {
		return NewRawConfigParser(nil), nil
	}
	bs, err := file.GetBytes(filename)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigLoadCode, err)
	}
	return ReadBytes(bs)
}

func ReadBytes(bs []byte) (*RawConfigParser, error) {
	f, err := ini.Load(bs)
	if err != nil {
		return nil, errors.Wrap(errors.ConfigLoadCode, err)
	}
	return NewRawConfigParser(f), nil
}

func (self *RawConfigParser) Has_section(section string) bool {
	return self.fileconfig.HasSection(section)
}

func (self *RawConfigParser) Getsection(section string) *ConfigWrapper {
	return &ConfigWrapper{parser: self, Section: strings.ToLower(section)}
}

// Check_unused_options fails on the first option present in the file that
// no getter asked for.
func (self *RawConfigParser) Check_unused_options() error {
	for _, sec := range self.fileconfig.Sections() {
		for _, key := range sec.Keys() {
			if _, ok := self.access_tracking[sec.Name()+":"+key.Name()]; !ok {
				return errors.Errorf(errors.ConfigLoadCode,
					"Option '%s' is not valid in section '%s'", key.Name(), sec.Name())
			}
		}
	}
	return nil
}

type ConfigWrapper struct {
	parser  *RawConfigParser
	Section string
}

// raw returns the option text. ok is false when the option is absent or
// blank.
func (self *ConfigWrapper) raw(option string) (string, bool) {
	option = strings.ToLower(option)
	self.parser.access_tracking[self.Section+":"+option] = true
	sec, err := self.parser.fileconfig.GetSection(self.Section)
	if err != nil {
		return "", false
	}
	key, err := sec.GetKey(option)
	if err != nil || key.String() == "" {
		return "", false
	}
	return key.String(), true
}

func (self *ConfigWrapper) missing(option string) error {
	return errors.Errorf(errors.MissingArgumentCode,
		"Option '%s' in section '%s' must be specified", option, self.Section)
}

// Get returns the option text, or default1 when it is not set. A nil
// default makes the option required.
func (self *ConfigWrapper) Get(option string, default1 interface{}) (string, error) {
	v, ok := self.raw(option)
	if ok {
		return v, nil
	}
	if default1 == nil {
		return "", self.missing(option)
	}
	return default1.(string), nil
}

// Getint parses an integer option. minval and maxval are skipped when nil.
func (self *ConfigWrapper) Getint(option string, default1, minval, maxval interface{}) (int, error) {
	v, ok := self.raw(option)
	if !ok {
		if default1 == nil {
			return 0, self.missing(option)
		}
		return default1.(int), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Errorf(errors.InvalidArgumentCode,
			"Unable to parse option '%s' in section '%s'", option, self.Section)
	}
	if minval != nil && n < minval.(int) {
		return 0, errors.Errorf(errors.InvalidArgumentCode,
			"Option '%s' in section '%s' must have minimum of %d", option, self.Section, minval)
	}
	if maxval != nil && n > maxval.(int) {
		return 0, errors.Errorf(errors.InvalidArgumentCode,
			"Option '%s' in section '%s' must have maximum of %d", option, self.Section, maxval)
	}
	return n, nil
}

// Getfloat parses a float option. Each bound is skipped when nil.
func (self *ConfigWrapper) Getfloat(option string, default1, minval, maxval,
	above, below interface{}) (float64, error) {
	v, ok := self.raw(option)
	if !ok {
		if default1 == nil {
			return 0, self.missing(option)
		}
		return default1.(float64), nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Errorf(errors.InvalidArgumentCode,
			"Unable to parse option '%s' in section '%s'", option, self.Section)
	}
	if minval != nil && n < minval.(float64) {
		return 0, errors.Errorf(errors.InvalidArgumentCode,
			"Option '%s' in section '%s' must have minimum of %f", option, self.Section, minval)
	}
	if maxval != nil && n > maxval.(float64) {
		return 0, errors.Errorf(errors.InvalidArgumentCode,
			"Option '%s' in section '%s' must have maximum of %f", option, self.Section, maxval)
	}
	if above != nil && n <= above.(float64) {
		return 0, errors.Errorf(errors.InvalidArgumentCode,
			"Option '%s' in section '%s' must be above %f", option, self.Section, above)
	}
	if below != nil && n >= below.(float64) {
		return 0, errors.Errorf(errors.InvalidArgumentCode,
			"Option '%s' in section '%s' must be below %f", option, self.Section, below)
	}
	return n, nil
}

// Getchoice returns the option if it is one of choices.
func (self *ConfigWrapper) Getchoice(option string, choices []string, default1 interface{}) (string, error) {
	v, err := self.Get(option, default1)
	if err != nil {
		return "", err
	}
	for _, c := range choices {
		if strings.EqualFold(c, v) {
			return c, nil
		}
	}
	return "", errors.Errorf(errors.InvalidArgumentCode,
		"Choice '%s' for option '%s' in section '%s' is not a valid choice", v, option, self.Section)
}

package ini

import (
	"errors"
	"strconv"
	"strings"
)

type Section struct {
	name    string
	keys    map[string]*Key
	keyList []string
}

type Key struct {
	section *Section
	name    string
	value   string
}

func NewSection(name string) *Section {
	return &Section{
		name:    name,
		keys:    make(map[string]*Key),
		keyList: make([]string, 0),
	}
}

func (sec *Section) Name() string {
	if sec == nil {
		panic("nil section")
	}
	return sec.name
}

func (sec *Section) HasKey(name string) bool {
	_, err := sec.GetKey(name)
	return err == nil
}

func (sec *Section) GetKey(name string) (*Key, error) {
	kv, ok := sec.keys[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.New(name + " not exists")
	}

	return kv, nil
}

func (sec *Section) Keys() []*Key {
	var keys = make([]*Key, 0, len(sec.keys))
	for _, name := range sec.keyList {
		keys = append(keys, sec.keys[name])
	}
	return keys
}

// NewKey adds a key, or overwrites the value of an existing one.
func (sec *Section) NewKey(name string, value string) (*Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 0 {
		return nil, errors.New("empty key name in section " + sec.name)
	}

	key, ok := sec.keys[name]
	if !ok {
		key = &Key{section: sec, name: name}
		sec.keys[name] = key
		sec.keyList = append(sec.keyList, name)
	}
	key.value = value
	return key, nil
}

func (k *Key) Name() string {
	return k.name
}

func (k *Key) String() string {
	return k.value
}

func (k *Key) Int() (int, error) {
	return strconv.Atoi(k.value)
}

func (k *Key) Float64() (float64, error) {
	return strconv.ParseFloat(k.value, 64)
}

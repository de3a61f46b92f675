package file

import (
	"os"
)

func GetBytes(fileName string) ([]byte, error) {
	return os.ReadFile(fileName)
}

func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

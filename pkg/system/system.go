package system

import (
	"os"
	"sync"
)

var (
	// A stored version of os.Getwd(). Set on the first Get* call.
	cwd string
)

func Getwd() (string, error) {
	if err := initer(); err != nil {
		return "", err
	}

	return cwd, nil
}

// Setwd overrides the stored working directory. Nothing on disk changes, only
// the value relative paths are resolved against.
func Setwd(wd string) {
	_ = initer()
	cwd = wd
}

var initer = sync.OnceValue[error](func() error {
	var err error
	cwd, err = os.Getwd()
	if err != nil {
		return err
	}

	return nil
})

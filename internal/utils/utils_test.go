package utils_test

import (
	"ghost-theme-storefront/internal/blog"
	"ghost-theme-storefront/internal/catalog"
	"ghost-theme-storefront/internal/constants"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/logging"
	"ghost-theme-storefront/internal/pages"
	"ghost-theme-storefront/internal/utils"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"testing"
)

func TestSliceToMap(t *testing.T) {
	type User struct {
		ID   int
		Name string
	}

	users := []User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
		{ID: 3, Name: "Charlie"},
	}

	want := map[int]User{
		1: {ID: 1, Name: "Alice"},
		2: {ID: 2, Name: "Bob"},
		3: {ID: 3, Name: "Charlie"},
	}

	got := utils.SliceToMap(users, func(u User) int { return u.ID })

	if !cmp.Equal(got, want) {
		t.Errorf("SliceToMap mismatch\n got:  %#v\nwant: %#v", got, want)
		return
	}
}

func TestSliceToMap_LastKeyWins(t *testing.T) {
	got := utils.SliceToMap([]string{"aa", "ab", "ba"}, func(s string) byte { return s[0] })

	want := map[byte]string{'a': "ab", 'b': "ba"}

	if !cmp.Equal(got, want) {
		t.Errorf("SliceToMap mismatch\n got:  %#v\nwant: %#v", got, want)
		return
	}
}

func TestRegistry(t *testing.T) {
	controllerRegistry := make(map[int]any)

	cPtr := &catalog.Controller{}
	controllerRegistry[constants.Catalog] = cPtr
	var core zapcore.Core
	cPtr.Env = &environment.Env{Logger: logging.DefaultLogger{Logger: zap.New(core).Sugar()}}

	bPtr := &blog.Controller{}
	controllerRegistry[constants.Blog] = bPtr

	pPtr := &pages.Controller{}
	controllerRegistry[constants.Pages] = pPtr

	if cPtr != controllerRegistry[constants.Catalog] {
		t.Errorf("Catalog controller registry mismatch")
		return
	}

	if bPtr != controllerRegistry[constants.Blog] {
		t.Errorf("Blog controller registry mismatch")
		return
	}

	if pPtr != controllerRegistry[constants.Pages] {
		t.Errorf("Pages controller registry mismatch")
		return
	}
}

package app

import (
	"github.com/vk/declargo/internal/registry"
	"github.com/vk/declargo/modules/exec"
	"github.com/vk/declargo/modules/file"
	"github.com/vk/declargo/modules/notify"
)

// coreModules is the default set of builtin type modules registered when the
// caller passes none.
var coreModules = []registry.Module{
	&exec.Module{},
	&file.Module{},
	&notify.Module{},
}

package tui

import "github.com/Veraticus/finsecure-hub/internal/model"

type bundleGeneratedMsg struct {
	bundle *model.DatasetBundle
}

type generateFailedMsg struct {
	err error
}

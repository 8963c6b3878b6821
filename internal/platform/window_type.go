package platform

import "github.com/BurntSushi/xgb/xproto"

const (
	windowTypeDock = "_NET_WM_WINDOW_TYPE_DOCK"

	propWindowType = "_NET_WM_WINDOW_TYPE"
	// propSavedType holds the window type a window had before it was
	// docked. Only windows docked by this tool carry it.
	propSavedType = "_GOAPPBAR_SAVED_WINDOW_TYPE"
)

// atomProps reads and writes ATOM list properties on a window.
type atomProps interface {
	// atoms returns the property value and whether the property exists.
	atoms(win xproto.Window, prop string) ([]string, bool)
	setAtoms(win xproto.Window, prop string, values []string) error
	deleteProp(win xproto.Window, prop string) error
}

// claimDockType marks win as a dock, saving its previous type first. A
// window that already is a dock is left untouched.
func claimDockType(p atomProps, win xproto.Window) error {
	current, _ := p.atoms(win, propWindowType)
	if containsString(current, windowTypeDock) {
		return nil
	}
	if _, saved := p.atoms(win, propSavedType); !saved {
		if err := p.setAtoms(win, propSavedType, current); err != nil {
			return err
		}
	}
	return p.setAtoms(win, propWindowType, []string{windowTypeDock})
}

// releaseDockType restores the type saved by claimDockType. Windows this
// tool never docked keep whatever type they have.
func releaseDockType(p atomProps, win xproto.Window) error {
	saved, ok := p.atoms(win, propSavedType)
	if !ok {
		return nil
	}
	if len(saved) == 0 {
		if err := p.deleteProp(win, propWindowType); err != nil {
			return err
		}
	} else if err := p.setAtoms(win, propWindowType, saved); err != nil {
		return err
	}
	return p.deleteProp(win, propSavedType)
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

package events

import (
	"fmt"

	"github.com/atomicstack/cascade-menu/internal/logging"
)

type MenuTracer struct{}

type CommandTracer struct{}

var (
	Menu    = MenuTracer{}
	Command = CommandTracer{}
)

func (MenuTracer) Normalized(session string, keys int, fingerprint uint64) {
	logging.Trace("menu.normalize", map[string]interface{}{
		"session":     session,
		"keys":        keys,
		"fingerprint": fmt.Sprintf("%016x", fingerprint),
	})
}

func (MenuTracer) Malformed(session, item string) {
	logging.Trace("menu.malformed", map[string]interface{}{"session": session, "item": item})
}

func (MenuTracer) CardOpened(session string, index int, key string, x, y, width, height int) {
	logging.Trace("menu.card.open", map[string]interface{}{
		"session": session,
		"card":    index,
		"key":     key,
		"rect":    []int{x, y, width, height},
	})
}

func (MenuTracer) CardClosed(session string, index int, key string) {
	logging.Trace("menu.card.close", map[string]interface{}{"session": session, "card": index, "key": key})
}

func (MenuTracer) Selected(session string, card int, item string, hasSubmenu bool) {
	logging.Trace("menu.select", map[string]interface{}{
		"session":    session,
		"card":       card,
		"item":       item,
		"hasSubmenu": hasSubmenu,
	})
}

func (MenuTracer) Dismissed(session string) {
	logging.Trace("menu.dismiss", map[string]interface{}{"session": session})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

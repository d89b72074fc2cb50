package hbswitch

import (
	"reflect"
	"sort"

	"github.com/aymerick/raymond"
	"go.uber.org/zap"
)

// The host engine maps template parameters positionally onto a helper's
// declared arguments and enforces their count, appending *Options as the
// final argument. Invoking a helper with the wrong number of parameters is
// therefore a render error raised by the host itself. Helpers have no
// error return; they raise errors by panicking with an error value, which
// the host's render recovery converts into the Exec error result.

// switchHelper opens a switch block. It receives the value to switch on
// and pushes a private data frame carrying that value and the
// not-yet-matched flag for the nested case and default helpers. The frame
// is popped by the host when the block ends, so nested switch blocks
// shadow and restore the outer state.
func (h *Helpers) switchHelper(value interface{}, options *raymond.Options) string {
	frame := options.NewDataFrame()
	frame.Set(DataKeyValue, value)
	frame.Set(DataKeyMatched, false)

	h.logger.Debug(LogMsgSwitchOpened,
		zap.String(LogFieldHelper, h.config.switchName),
		zap.String(LogFieldValue, raymond.Str(value)),
	)

	return options.FnData(frame)
}

// caseHelper renders its body when the switch has not matched yet and any
// of its labels equals the switch value. A match flips the shared flag so
// later sibling cases and the default block stay silent.
//
// The host's fixed helper arity allows exactly one positional label.
// Additional labels ride in as hash arguments, whose key names carry no
// meaning, and any label that is a slice or array contributes its
// elements:
//
//	{{#case "page1" or="page2"}}...{{/case}}
//	{{#case knownStates}}...{{/case}}
func (h *Helpers) caseHelper(label interface{}, options *raymond.Options) string {
	matched, ok := switchState(options.DataFrame())
	if !ok {
		panic(NewOrphanBlockError(h.config.caseName, h.config.switchName))
	}
	if matched {
		h.logger.Debug(LogMsgCaseSkipped, zap.String(LogFieldHelper, h.config.caseName))
		return ""
	}

	value := options.Data(DataKeyValue)
	for _, candidate := range caseLabels(label, options.Hash()) {
		if h.config.compare(value, candidate) {
			options.DataFrame().Set(DataKeyMatched, true)
			h.logger.Debug(LogMsgCaseMatched,
				zap.String(LogFieldHelper, h.config.caseName),
				zap.String(LogFieldLabel, raymond.Str(candidate)),
			)
			return options.Fn()
		}
	}
	return ""
}

// defaultHelper renders its body only when no case in the enclosing switch
// block has matched. Blocks are evaluated in source position, so the
// default block belongs after all case blocks.
func (h *Helpers) defaultHelper(options *raymond.Options) string {
	matched, ok := switchState(options.DataFrame())
	if !ok {
		panic(NewOrphanBlockError(h.config.defaultName, h.config.switchName))
	}
	if matched {
		h.logger.Debug(LogMsgDefaultSkipped, zap.String(LogFieldHelper, h.config.defaultName))
		return ""
	}

	h.logger.Debug(LogMsgDefaultRendered, zap.String(LogFieldHelper, h.config.defaultName))
	return options.Fn()
}

// caseLabels expands the positional label and the hash values into the
// candidate label list. Hash values are appended in sorted key order so
// matching stays deterministic.
func caseLabels(label interface{}, hash map[string]interface{}) []interface{} {
	labels := appendLabel(nil, label)

	keys := make([]string, 0, len(hash))
	for key := range hash {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		labels = appendLabel(labels, hash[key])
	}
	return labels
}

// appendLabel adds a label candidate, flattening slices and arrays so
// label sets can come from context data.
func appendLabel(labels []interface{}, v interface{}) []interface{} {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			labels = append(labels, rv.Index(i).Interface())
		}
		return labels
	default:
		return append(labels, v)
	}
}

// switchState reads the match flag from the current private data frame.
// ok is false when the frame does not belong to a switch block, which is
// how orphan case/default blocks are detected.
func switchState(frame *raymond.DataFrame) (matched bool, ok bool) {
	if frame == nil {
		return false, false
	}
	matched, ok = frame.Get(DataKeyMatched).(bool)
	return matched, ok
}

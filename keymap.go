package main

// KeyHandler handles a key name and reports whether it consumed it.
type KeyHandler func(key string) bool

func CreateKeyHandler(f func()) KeyHandler {
	return func(key string) bool {
		f()
		return true
	}
}

// KeyMap dispatches key names such as "w", "S" or "Escape".
type KeyMap map[string]KeyHandler

func CreateKeyMap() KeyMap {
	return KeyMap{}
}

func (km KeyMap) HandleKey(key string) bool {
	if handler, ok := km[key]; ok {
		return handler(key)
	}
	return false
}

func (km KeyMap) Bind(key string, handler KeyHandler) {
	km[key] = handler
}

// BindAll binds the same action to every listed key.
func (km KeyMap) BindAll(keys []string, f func()) {
	handler := CreateKeyHandler(f)
	for _, key := range keys {
		km.Bind(key, handler)
	}
}

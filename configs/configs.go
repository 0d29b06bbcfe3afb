// Package configs содержит встроенные статические каталоги
package configs

import _ "embed"

// RoomImages - каталог изображений комнат по умолчанию
//
//go:embed room_images.yaml
var RoomImages []byte

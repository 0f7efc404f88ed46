package identifier

import (
	"fmt"

	"github.com/google/uuid"
)

const byteLength = 16

// Encode bir UUID'yi saklama katmanında kullanılan 16 baytlık ham haline çevirir.
func Encode(id uuid.UUID) []byte {
	b := make([]byte, byteLength)
	copy(b, id[:])
	return b
}

// Decode saklama katmanından okunan ham baytları UUID'ye geri çevirir.
// 16 bayt dışındaki her girdi hatalıdır; bozuk satırlar sessizce atlanmaz.
func Decode(b []byte) (uuid.UUID, error) {
	if len(b) != byteLength {
		return uuid.Nil, fmt.Errorf("kimlik %d bayt olmalı, %d bayt okundu", byteLength, len(b))
	}

	id, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, fmt.Errorf("kimlik çözümlenemedi: %w", err)
	}

	return id, nil
}

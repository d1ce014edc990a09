// services/catalog.go
package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrEmptyPool is returned when a message pool has no entries. The built-in
// pools are never empty, so hitting this means a misconfigured catalog.
var ErrEmptyPool = errors.New("message pool is empty")

// prayerPlaceholder is substituted with the prayer name in ending templates.
const prayerPlaceholder = "{prayer}"

var prayerStartMessages = map[string][]string{
	"Fajr": {
		"😱 FAJR IS NOW! Are you sleeping?? Your best prayer is happening RIGHT NOW!",
		"⏰ CODE RED 🚨 Fajr started! Every second counts!",
		"🔥 WAKE UP WAKE UP WAKE UP! Fajr is on fire right now!",
	},
	"Dhuhr": {
		"🕐 DHUHR IS HERE! Everyone else is praying... are you?",
		"☀️ DHUHR ALERT! Your streak is on the line!",
		"🚨 Dhuhr is LIVE! Move NOW!",
	},
	"Asr": {
		"🌤️ ASR IS STARTING! One of the most powerful prayers!",
		"🚨 It's Asr o'clock! Don't skip this!",
		"🔥 ASR TIME! Last chance before sunset!",
	},
	"Maghrib": {
		"🌆 MAGHRIB IS HERE! The sun is setting!",
		"🚨 CODE RED! Maghrib just started!",
		"😱 MAGHRIB TIME! The sunset won't wait!",
	},
	"Isha": {
		"🌙 ISHA IS NOW! Your night prayer is here!",
		"🚨 ISHA TIME! The night is young!",
		"🔥 ISHA ALERT! End your day RIGHT!",
	},
}

var prayerEndingMessages = []string{
	"⏳ OH NO! Only 20 minutes left for {prayer}! 😱",
	"🚨 ALERT! {prayer} is ENDING SOON! 20 minutes... MOVE!",
	"⚡ LAST CALL! {prayer} ends in 20 mins!",
	"🔥 {prayer} expires in 20 minutes! GO GO GO!",
}

var duaMessages = map[string][]string{
	"morning": {
		"🌅 RISE AND SHINE! Morning duas are waiting! ⚡",
		"💪 Winners pray in the morning!",
	},
	"midday": {
		"☀️ MIDDAY ALERT! Time to recharge with duas! ⚡",
		"🎯 Midday duas are your power break!",
	},
	"evening": {
		"🌆 GOLDEN HOUR! Evening duas await! 🧘",
		"💜 Pause. Your evening duas will calm you.",
	},
	"night": {
		"🌙 NIGHT RITUAL! Sleep duas = best rest! 😴",
		"⭐ Before you sleep, your duas are calling!",
	},
}

// MessageCatalog holds the immutable per-category message pools. Built once at
// startup; never mutated afterwards.
type MessageCatalog struct {
	prayerStart  map[string][]string
	prayerEnding []string
	dua          map[string][]string
}

func NewMessageCatalog() *MessageCatalog {
	return &MessageCatalog{
		prayerStart:  prayerStartMessages,
		prayerEnding: prayerEndingMessages,
		dua:          duaMessages,
	}
}

// SelectFromPool returns a uniformly random element of pool.
func SelectFromPool(pool []string) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	return pool[rand.Intn(len(pool))], nil
}

// RenderTemplate substitutes every placeholder occurrence with the prayer name.
func RenderTemplate(template, prayer string) string {
	return strings.ReplaceAll(template, prayerPlaceholder, prayer)
}

// StartMessage picks a start-window message for the given prayer.
func (c *MessageCatalog) StartMessage(prayer string) (string, error) {
	msg, err := SelectFromPool(c.prayerStart[prayer])
	if err != nil {
		return "", fmt.Errorf("start pool for %s: %w", prayer, err)
	}
	return msg, nil
}

// EndingMessage picks an ending-soon template and renders the prayer name in.
func (c *MessageCatalog) EndingMessage(prayer string) (string, error) {
	template, err := SelectFromPool(c.prayerEnding)
	if err != nil {
		return "", fmt.Errorf("ending pool: %w", err)
	}
	return RenderTemplate(template, prayer), nil
}

// DuaMessage picks a message for the named dua slot.
func (c *MessageCatalog) DuaMessage(slot string) (string, error) {
	msg, err := SelectFromPool(c.dua[slot])
	if err != nil {
		return "", fmt.Errorf("dua pool for %s: %w", slot, err)
	}
	return msg, nil
}

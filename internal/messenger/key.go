// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package messenger

// Key names one semantic message id. Handlers never format text
// themselves; they pick a Key and hand it, plus any arguments, to a
// Messenger.
type Key string

const (
	Taken                Key = "taken"
	CannotTakeFixed      Key = "cannotTakeFixed"
	RoomIsDark           Key = "roomIsDark"
	BlockedDirection     Key = "blockedDirection"
	DontUnderstand       Key = "dontUnderstand"
	ContainerClosed      Key = "containerClosed"
	ContainerFull        Key = "containerFull"
	ItemNotAccessible    Key = "itemNotAccessible"
	ItemNotTakable       Key = "itemNotTakable"
	ItemNotOpenable      Key = "itemNotOpenable"
	AlreadyOpen          Key = "alreadyOpen"
	AlreadyClosed        Key = "alreadyClosed"
	Locked               Key = "locked"
	WrongKey             Key = "wrongKey"
	NotWearable          Key = "notWearable"
	NotHeld              Key = "notHeld"
	PlayerCannotCarryMore Key = "playerCannotCarryMore"
	PrerequisiteNotMet   Key = "prerequisiteNotMet"
	InternalEngineError  Key = "internalEngineError"
	Dropped              Key = "dropped"
	Opened               Key = "opened"
	Closed               Key = "closed"
	Unlocked             Key = "unlocked"
	Worn                 Key = "worn"
	Removed              Key = "removed"
	NothingToReferTo     Key = "nothingToReferTo"
	DontSeeThat          Key = "dontSeeThat"
	BeMoreSpecific       Key = "beMoreSpecific"
	UnknownWord          Key = "unknownWord"
	Garbled              Key = "garbled"
	NothingSpecial       Key = "nothingSpecial"
	TimePasses           Key = "timePasses"
	Done                 Key = "done"
	Saved                Key = "saved"
	Restored             Key = "restored"
	Restarted            Key = "restarted"
	SaveUnavailable      Key = "saveUnavailable"
	NothingToRestore     Key = "nothingToRestore"
)

// defaultCatalog seeds every built-in Key with player-facing text. A
// game overrides only the keys it wants to re-voice; every key not
// present in an override file keeps falling back to this catalog.
func defaultCatalog() map[Key]string {
	return map[Key]string{
		Taken:                 "Taken.",
		CannotTakeFixed:       "You can't take that.",
		RoomIsDark:            "It is pitch dark. You are likely to be eaten by a grue.",
		BlockedDirection:      "You can't go that way.",
		DontUnderstand:        "I don't understand that.",
		ContainerClosed:       "That's closed.",
		ContainerFull:         "There's no more room in there.",
		ItemNotAccessible:     "You can't reach that.",
		ItemNotTakable:        "You can't take that.",
		ItemNotOpenable:       "You can't open that.",
		AlreadyOpen:           "That's already open.",
		AlreadyClosed:         "That's already closed.",
		Locked:                "It's locked.",
		WrongKey:              "That key doesn't fit.",
		NotWearable:           "You can't wear that.",
		NotHeld:               "You're not holding that.",
		PlayerCannotCarryMore: "Your hands are full.",
		PrerequisiteNotMet:    "You can't do that yet.",
		InternalEngineError:   "Something has gone wrong.",
		Dropped:               "Dropped.",
		Opened:                "Opened.",
		Closed:                "Closed.",
		Unlocked:              "Unlocked.",
		Worn:                  "You are now wearing it.",
		Removed:               "You take it off.",
		NothingToReferTo:      "I don't know what you are referring to.",
		DontSeeThat:           "You don't see that here.",
		BeMoreSpecific:        "Please be more specific.",
		UnknownWord:           "I don't know the word \"%s\".",
		Garbled:               "I didn't understand that sentence.",
		NothingSpecial:        "You see nothing special about it.",
		TimePasses:            "Time passes.",
		Done:                  "Done.",
		Saved:                 "Saved.",
		Restored:              "Restored.",
		Restarted:             "As you wish.",
		SaveUnavailable:       "You can't save right now.",
		NothingToRestore:      "There's nothing to restore.",
	}
}

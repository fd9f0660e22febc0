package harvest

import "github.com/mind-engage/showquiz/internal/episode"

// MinScraped is the episode count below which the well-known set is appended.
const MinScraped = 10

var commonCharacters = []string{
	"Rick Sanchez", "Morty Smith", "Summer Smith", "Jerry Smith", "Beth Smith",
	"Mr. Meeseeks", "Birdperson", "Squanch", "Mr. Poopybutthole", "Evil Morty",
	"Jessica", "Principal Vagina", "Tammy", "Unity", "Pickle Rick",
}

var commonQuotes = []string{
	"Wubba lubba dub dub!",
	"Aw geez Rick!",
	"I'm Pickle Rick!",
	"Nobody exists on purpose, nobody belongs anywhere, everybody's gonna die.",
	"That's slavery with extra steps!",
	"Your boos mean nothing, I've seen what makes you cheer!",
	"I'm Mr. Meeseeks, look at me!",
	"Ooh wee!",
	"In bird culture, this is considered a dick move.",
	"Get schwifty!",
	"Tiny Rick!",
	"Show me what you got!",
}

// KnownEpisodes returns a fresh copy of the well-known episode set.
func KnownEpisodes() []episode.Episode {
	return []episode.Episode{
		{
			EpisodeNumber: "S1E1",
			Title:         "Pilot",
			Summary:       "Rick takes Morty on their first adventure to another dimension to get Mega Seeds.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Jessica", "Jerry Smith"},
			Quotes:        []string{"Wubba lubba dub dub!", "Aw geez Rick!"},
		},
		{
			EpisodeNumber: "S1E6",
			Title:         "Rick Potion #9",
			Summary:       "Rick creates a love potion for Morty, but it goes horribly wrong and turns everyone into monsters.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Jessica", "Beth Smith"},
			Quotes:        []string{"Nobody exists on purpose, nobody belongs anywhere, everybody's gonna die.", "I'm gonna need you to put these seeds way up inside your butthole Morty."},
		},
		{
			EpisodeNumber: "S2E4",
			Title:         "Total Rickall",
			Summary:       "The family is trapped with alien parasites that implant false memories.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Summer Smith", "Jerry Smith", "Beth Smith", "Mr. Poopybutthole"},
			Quotes:        []string{"Ooh wee!", "I'm Mr. Meeseeks, look at me!"},
		},
		{
			EpisodeNumber: "S3E1",
			Title:         "The Rickshank Rickdemption",
			Summary:       "Rick is in prison and the family deals with the aftermath of the season 2 finale.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Summer Smith", "Cornvelious Daniel"},
			Quotes:        []string{"I'm Pickle Rick!", "To be fair, you have to have a very high IQ to understand Rick and Morty."},
		},
		{
			EpisodeNumber: "S3E3",
			Title:         "Pickle Rick",
			Summary:       "Rick turns himself into a pickle to avoid family therapy.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Beth Smith", "Summer Smith", "Dr. Wong"},
			Quotes:        []string{"I'm Pickle Rick!", "The reason anyone would do this is, if they could, which they can't, would be because they could, which they can't."},
		},
		{
			EpisodeNumber: "S2E6",
			Title:         "The Ricks Must Be Crazy",
			Summary:       "Rick's car battery contains a miniverse with an entire civilization.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Zeep Xanflorp", "Summer Smith"},
			Quotes:        []string{"That's slavery with extra steps!", "Your boos mean nothing, I've seen what makes you cheer!"},
		},
		{
			EpisodeNumber: "S1E8",
			Title:         "Rixty Minutes",
			Summary:       "Rick and Morty watch interdimensional cable while the family has an existential crisis.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Summer Smith", "Jerry Smith", "Beth Smith"},
			Quotes:        []string{"Nobody exists on purpose, nobody belongs anywhere, we're all going to die.", "Come watch TV."},
		},
		{
			EpisodeNumber: "S2E1",
			Title:         "A Rickle in Time",
			Summary:       "Time is fractured and Rick, Morty, and Summer must fix it.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Summer Smith"},
			Quotes:        []string{"Time is a flat circle.", "My function is to keep Summer safe, not keep Summer being, like, totally stoked about, like, the general vibe and stuff."},
		},
		{
			EpisodeNumber: "S1E11",
			Title:         "Ricksy Business",
			Summary:       "Rick throws a party with aliens while Beth and Jerry are away.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Summer Smith", "Birdperson", "Squanch"},
			Quotes:        []string{"Wubba lubba dub dub means I am in great pain, please help me.", "In bird culture, this is considered a dick move."},
		},
		{
			EpisodeNumber: "S2E10",
			Title:         "The Wedding Squanchers",
			Summary:       "The family attends Birdperson's wedding, but the Galactic Federation crashes the party.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Summer Smith", "Birdperson", "Tammy", "Squanch"},
			Quotes:        []string{"Bird Person, I can't do this anymore.", "Tammy, don't be gross."},
		},
	}
}

// Fallback is the dataset used whenever the source cannot be scraped.
func Fallback() []episode.Episode {
	return []episode.Episode{
		{
			EpisodeNumber: "S1E1",
			Title:         "Pilot",
			Summary:       "Rick takes Morty on their first adventure to another dimension to get Mega Seeds.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Jessica", "Jerry Smith"},
			Quotes:        []string{"Wubba lubba dub dub!", "Aw geez Rick!"},
		},
		{
			EpisodeNumber: "S3E3",
			Title:         "Pickle Rick",
			Summary:       "Rick turns himself into a pickle to avoid family therapy.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Beth Smith", "Dr. Wong"},
			Quotes:        []string{"I'm Pickle Rick!", "I'm not a villain, Summer, but I shouldn't be your hero either."},
		},
		{
			EpisodeNumber: "S1E6",
			Title:         "Rick Potion #9",
			Summary:       "Rick creates a love potion for Morty, but it goes horribly wrong.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Jessica", "Beth Smith"},
			Quotes:        []string{"Nobody exists on purpose, nobody belongs anywhere.", "Aw geez Rick, what did you do?"},
		},
		{
			EpisodeNumber: "S2E4",
			Title:         "Total Rickall",
			Summary:       "The family is trapped with alien parasites that implant false memories.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Mr. Poopybutthole", "Summer Smith"},
			Quotes:        []string{"Ooh wee!", "I'm Mr. Meeseeks, look at me!"},
		},
		{
			EpisodeNumber: "S2E6",
			Title:         "The Ricks Must Be Crazy",
			Summary:       "Rick's car battery contains a miniverse with an entire civilization.",
			Characters:    []string{"Rick Sanchez", "Morty Smith", "Zeep Xanflorp", "Summer Smith"},
			Quotes:        []string{"That's slavery with extra steps!", "Your boos mean nothing!"},
		},
	}
}

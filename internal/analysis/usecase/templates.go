package usecase

import (
	"strings"

	"brandpulse-srv/internal/model"
)

// Caption placeholders: {brand} is the brand as written, {tag} its hashtag token,
// {influencer} the creator handle.
var brandCaptions = map[model.Platform][]string{
	model.PlatformInstagram: {
		"Obsessed with my new {brand} drop 😍 Styled it three ways for you! #{tag} #ootd #sponsored",
		"Morning routine powered by {brand}. Swipe to see the full look ✨ #{tag} #morningroutine",
		"Finally got my hands on the {brand} collab everyone is talking about #{tag} #haul @{tag}",
		"Not every partnership feels this natural. {brand} just gets it #{tag} #ad #authentic",
		"Weekend vibes with {brand} 🌿 Link in bio for 15% off #{tag} #weekend",
		"Honest review after 30 days with {brand}: the good, the bad and the surprising #{tag} #review",
	},
	model.PlatformYouTube: {
		"I tested {brand} for a month so you don't have to | Full honest review #{tag}",
		"Unboxing the new {brand} lineup + giveaway! Thanks @{tag} for sponsoring #{tag} #unboxing",
		"{brand} vs the competition: which one is actually worth it? #{tag} #comparison",
		"Behind the scenes of my {brand} shoot 🎬 #{tag} #vlog",
		"Day in my life ft. {brand} #{tag} #dayinmylife",
	},
	model.PlatformTikTok: {
		"POV: you finally tried {brand} 😳 #{tag} #fyp #tiktokmademebuyit",
		"Rating every {brand} product I own out of 10 #{tag} #review #fyp",
		"{brand} hack nobody talks about 🤯 #{tag} #lifehack",
		"Get ready with me using only {brand} #{tag} #grwm @{tag}",
		"Is {brand} worth the hype? Let's find out #{tag} #honestreview",
	},
	model.PlatformTwitter: {
		"Been using {brand} for a few weeks now and honestly impressed. Thread 🧵 #{tag}",
		"Hot take: {brand} is underrated. Fight me. #{tag}",
		"Shoutout to @{tag} for early access to the new {brand} line, first impressions below #{tag} #ad",
		"Customer service at {brand} just solved my issue in 5 minutes. That's how it's done #{tag}",
	},
}

var genericCaptions = []string{
	"Grateful for this community, 1 year of creating together 💛 #milestone #grateful",
	"New video is live! Link in bio 🔗 #newvideo #creator",
	"Sunday reset: cleaning, journaling, planning the week ahead #selfcare #sundayreset",
	"Asked you what to film next and the answers were wild 😂 #community #qna",
	"Travel diaries, day 3. Still not over this view 🌅 #travel #wanderlust",
	"Trying a new workout split this month, who's joining? #fitness #motivation",
	"Late night editing session ☕ @{influencer} out here grinding #creatorlife",
	"Throwback to where it all started #throwback #journey",
}

func renderCaption(template, brand, influencer string) string {
	return strings.NewReplacer(
		"{brand}", brand,
		"{tag}", brandToken(brand),
		"{influencer}", influencer,
	).Replace(template)
}

func brandCaptionsFor(platform model.Platform) []string {
	if set, ok := brandCaptions[platform]; ok && len(set) > 0 {
		return set
	}
	return brandCaptions[model.PlatformInstagram]
}

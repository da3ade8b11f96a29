package database

import "time"

func at(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

const placeholderImg = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

// TestData is a small fixed dataset: topic mitch holds 12 articles, cats 1 and paper none.
// Article 1 has 11 comments and article 4 has none.
func TestData() SeedData {
	return SeedData{
		Topics: []SeedTopic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		},
		Users: []SeedUser{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Articles: []SeedArticle{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: at(1594329060000), Votes: 100, ArticleImgURL: placeholderImg},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell. Some years ago, never mind how long precisely, I thought I would buy a laptop.", CreatedAt: at(1602828180000), ArticleImgURL: placeholderImg},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: at(1604394720000), ArticleImgURL: placeholderImg},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: at(1588731240000), ArticleImgURL: placeholderImg},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: at(1596464040000), ArticleImgURL: placeholderImg},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: at(1602986000000), ArticleImgURL: placeholderImg},
			{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: at(1578406080000), ArticleImgURL: placeholderImg},
			{Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity.", CreatedAt: at(1587089280000), ArticleImgURL: placeholderImg},
			{Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: at(1591438200000), ArticleImgURL: placeholderImg},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: at(1589433300000), ArticleImgURL: placeholderImg},
			{Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of ideas for articles, I am staring at the wall blankly, like a cat.", CreatedAt: at(1579126860000), ArticleImgURL: placeholderImg},
			{Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: at(1602419040000), ArticleImgURL: placeholderImg},
			{Title: "Another article about Mitch", Topic: "mitch", Author: "butter_bridge", Body: "There will never be enough articles about Mitch!", CreatedAt: at(1602419040001), ArticleImgURL: placeholderImg},
		},
		Comments: []SeedComment{
			{Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", Article: 9, Author: "butter_bridge", Votes: 16, CreatedAt: at(1586179020000)},
			{Body: "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not cotton, not rayon, silky.", Article: 1, Author: "butter_bridge", Votes: 14, CreatedAt: at(1604113380000)},
			{Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.", Article: 1, Author: "icellusedkars", Votes: 100, CreatedAt: at(1583025180000)},
			{Body: "I carry a log, yes. Is it funny to you? It is not to me.", Article: 1, Author: "icellusedkars", Votes: -100, CreatedAt: at(1582459260000)},
			{Body: "I hate streaming noses", Article: 1, Author: "icellusedkars", CreatedAt: at(1604437200000)},
			{Body: "I hate streaming eyes even more", Article: 1, Author: "icellusedkars", CreatedAt: at(1586642520000)},
			{Body: "Lobster pot", Article: 1, Author: "icellusedkars", CreatedAt: at(1589577540000)},
			{Body: "Delicious crackerbreads", Article: 1, Author: "icellusedkars", CreatedAt: at(1586899140000)},
			{Body: "Superficially charming", Article: 1, Author: "icellusedkars", CreatedAt: at(1577848080000)},
			{Body: "git push origin master", Article: 3, Author: "icellusedkars", CreatedAt: at(1592641440000)},
			{Body: "Ambidextrous marsupial", Article: 3, Author: "icellusedkars", CreatedAt: at(1600560600000)},
			{Body: "Massive intercranial brain haemorrhage", Article: 1, Author: "icellusedkars", CreatedAt: at(1583133000000)},
			{Body: "Fruit pastilles", Article: 1, Author: "icellusedkars", CreatedAt: at(1592220300000)},
			{Body: "This morning, I showered for nine minutes.", Article: 5, Author: "butter_bridge", Votes: 16, CreatedAt: at(1595294400000)},
			{Body: "I am 100% sure that we're not completely sure.", Article: 5, Author: "butter_bridge", Votes: 1, CreatedAt: at(1606176480000)},
			{Body: "This is a bad article name", Article: 6, Author: "butter_bridge", Votes: 1, CreatedAt: at(1602433380000)},
			{Body: "The owls are not what they seem.", Article: 9, Author: "icellusedkars", Votes: 20, CreatedAt: at(1584205320000)},
			{Body: "This morning, I showered for nine minutes.", Article: 1, Author: "butter_bridge", Votes: 16, CreatedAt: at(1595294400001)},
		},
	}
}

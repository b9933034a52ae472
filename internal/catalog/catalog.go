// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the static reference tables: the 114 chapters of the
// corpus with their verse counts, and the closed set of tafsir authors.
package catalog

import (
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

const (
	FirstChapter = 1
	LastChapter  = 114
)

// chapters is indexed by chapter id - 1.
var chapters = [LastChapter]types.ChapterInfo{
	{ID: 1, NativeName: "الفاتحة", EnglishName: "Al-Fatihah", VerseCount: 7, RevelationPlace: types.Makkah},
	{ID: 2, NativeName: "البقرة", EnglishName: "Al-Baqarah", VerseCount: 286, RevelationPlace: types.Madinah},
	{ID: 3, NativeName: "آل عمران", EnglishName: "Aal-E-Imran", VerseCount: 200, RevelationPlace: types.Madinah},
	{ID: 4, NativeName: "النساء", EnglishName: "An-Nisa", VerseCount: 176, RevelationPlace: types.Madinah},
	{ID: 5, NativeName: "المائدة", EnglishName: "Al-Maidah", VerseCount: 120, RevelationPlace: types.Madinah},
	{ID: 6, NativeName: "الأنعام", EnglishName: "Al-An'am", VerseCount: 165, RevelationPlace: types.Makkah},
	{ID: 7, NativeName: "الأعراف", EnglishName: "Al-A'raf", VerseCount: 206, RevelationPlace: types.Makkah},
	{ID: 8, NativeName: "الأنفال", EnglishName: "Al-Anfal", VerseCount: 75, RevelationPlace: types.Madinah},
	{ID: 9, NativeName: "التوبة", EnglishName: "At-Tawbah", VerseCount: 129, RevelationPlace: types.Madinah},
	{ID: 10, NativeName: "يونس", EnglishName: "Yunus", VerseCount: 109, RevelationPlace: types.Makkah},
	{ID: 11, NativeName: "هود", EnglishName: "Hud", VerseCount: 123, RevelationPlace: types.Makkah},
	{ID: 12, NativeName: "يوسف", EnglishName: "Yusuf", VerseCount: 111, RevelationPlace: types.Makkah},
	{ID: 13, NativeName: "الرعد", EnglishName: "Ar-Ra'd", VerseCount: 43, RevelationPlace: types.Madinah},
	{ID: 14, NativeName: "إبراهيم", EnglishName: "Ibrahim", VerseCount: 52, RevelationPlace: types.Makkah},
	{ID: 15, NativeName: "الحجر", EnglishName: "Al-Hijr", VerseCount: 99, RevelationPlace: types.Makkah},
	{ID: 16, NativeName: "النحل", EnglishName: "An-Nahl", VerseCount: 128, RevelationPlace: types.Makkah},
	{ID: 17, NativeName: "الإسراء", EnglishName: "Al-Isra", VerseCount: 111, RevelationPlace: types.Makkah},
	{ID: 18, NativeName: "الكهف", EnglishName: "Al-Kahf", VerseCount: 110, RevelationPlace: types.Makkah},
	{ID: 19, NativeName: "مريم", EnglishName: "Maryam", VerseCount: 98, RevelationPlace: types.Makkah},
	{ID: 20, NativeName: "طه", EnglishName: "Taha", VerseCount: 135, RevelationPlace: types.Makkah},
	{ID: 21, NativeName: "الأنبياء", EnglishName: "Al-Anbiya", VerseCount: 112, RevelationPlace: types.Makkah},
	{ID: 22, NativeName: "الحج", EnglishName: "Al-Hajj", VerseCount: 78, RevelationPlace: types.Madinah},
	{ID: 23, NativeName: "المؤمنون", EnglishName: "Al-Mu'minun", VerseCount: 118, RevelationPlace: types.Makkah},
	{ID: 24, NativeName: "النور", EnglishName: "An-Nur", VerseCount: 64, RevelationPlace: types.Madinah},
	{ID: 25, NativeName: "الفرقان", EnglishName: "Al-Furqan", VerseCount: 77, RevelationPlace: types.Makkah},
	{ID: 26, NativeName: "الشعراء", EnglishName: "Ash-Shu'ara", VerseCount: 227, RevelationPlace: types.Makkah},
	{ID: 27, NativeName: "النمل", EnglishName: "An-Naml", VerseCount: 93, RevelationPlace: types.Makkah},
	{ID: 28, NativeName: "القصص", EnglishName: "Al-Qasas", VerseCount: 88, RevelationPlace: types.Makkah},
	{ID: 29, NativeName: "العنكبوت", EnglishName: "Al-Ankabut", VerseCount: 69, RevelationPlace: types.Makkah},
	{ID: 30, NativeName: "الروم", EnglishName: "Ar-Rum", VerseCount: 60, RevelationPlace: types.Makkah},
	{ID: 31, NativeName: "لقمان", EnglishName: "Luqman", VerseCount: 34, RevelationPlace: types.Makkah},
	{ID: 32, NativeName: "السجدة", EnglishName: "As-Sajdah", VerseCount: 30, RevelationPlace: types.Makkah},
	{ID: 33, NativeName: "الأحزاب", EnglishName: "Al-Ahzab", VerseCount: 73, RevelationPlace: types.Madinah},
	{ID: 34, NativeName: "سبأ", EnglishName: "Saba", VerseCount: 54, RevelationPlace: types.Makkah},
	{ID: 35, NativeName: "فاطر", EnglishName: "Fatir", VerseCount: 45, RevelationPlace: types.Makkah},
	{ID: 36, NativeName: "يس", EnglishName: "Ya-Sin", VerseCount: 83, RevelationPlace: types.Makkah},
	{ID: 37, NativeName: "الصافات", EnglishName: "As-Saffat", VerseCount: 182, RevelationPlace: types.Makkah},
	{ID: 38, NativeName: "ص", EnglishName: "Sad", VerseCount: 88, RevelationPlace: types.Makkah},
	{ID: 39, NativeName: "الزمر", EnglishName: "Az-Zumar", VerseCount: 75, RevelationPlace: types.Makkah},
	{ID: 40, NativeName: "غافر", EnglishName: "Ghafir", VerseCount: 85, RevelationPlace: types.Makkah},
	{ID: 41, NativeName: "فصلت", EnglishName: "Fussilat", VerseCount: 54, RevelationPlace: types.Makkah},
	{ID: 42, NativeName: "الشورى", EnglishName: "Ash-Shura", VerseCount: 53, RevelationPlace: types.Makkah},
	{ID: 43, NativeName: "الزخرف", EnglishName: "Az-Zukhruf", VerseCount: 89, RevelationPlace: types.Makkah},
	{ID: 44, NativeName: "الدخان", EnglishName: "Ad-Dukhan", VerseCount: 59, RevelationPlace: types.Makkah},
	{ID: 45, NativeName: "الجاثية", EnglishName: "Al-Jathiyah", VerseCount: 37, RevelationPlace: types.Makkah},
	{ID: 46, NativeName: "الأحقاف", EnglishName: "Al-Ahqaf", VerseCount: 35, RevelationPlace: types.Makkah},
	{ID: 47, NativeName: "محمد", EnglishName: "Muhammad", VerseCount: 38, RevelationPlace: types.Madinah},
	{ID: 48, NativeName: "الفتح", EnglishName: "Al-Fath", VerseCount: 29, RevelationPlace: types.Madinah},
	{ID: 49, NativeName: "الحجرات", EnglishName: "Al-Hujurat", VerseCount: 18, RevelationPlace: types.Madinah},
	{ID: 50, NativeName: "ق", EnglishName: "Qaf", VerseCount: 45, RevelationPlace: types.Makkah},
	{ID: 51, NativeName: "الذاريات", EnglishName: "Adh-Dhariyat", VerseCount: 60, RevelationPlace: types.Makkah},
	{ID: 52, NativeName: "الطور", EnglishName: "At-Tur", VerseCount: 49, RevelationPlace: types.Makkah},
	{ID: 53, NativeName: "النجم", EnglishName: "An-Najm", VerseCount: 62, RevelationPlace: types.Makkah},
	{ID: 54, NativeName: "القمر", EnglishName: "Al-Qamar", VerseCount: 55, RevelationPlace: types.Makkah},
	{ID: 55, NativeName: "الرحمن", EnglishName: "Ar-Rahman", VerseCount: 78, RevelationPlace: types.Makkah},
	{ID: 56, NativeName: "الواقعة", EnglishName: "Al-Waqiah", VerseCount: 96, RevelationPlace: types.Makkah},
	{ID: 57, NativeName: "الحديد", EnglishName: "Al-Hadid", VerseCount: 29, RevelationPlace: types.Madinah},
	{ID: 58, NativeName: "المجادلة", EnglishName: "Al-Mujadila", VerseCount: 22, RevelationPlace: types.Madinah},
	{ID: 59, NativeName: "الحشر", EnglishName: "Al-Hashr", VerseCount: 24, RevelationPlace: types.Madinah},
	{ID: 60, NativeName: "الممتحنة", EnglishName: "Al-Mumtahanah", VerseCount: 13, RevelationPlace: types.Madinah},
	{ID: 61, NativeName: "الصف", EnglishName: "As-Saff", VerseCount: 14, RevelationPlace: types.Madinah},
	{ID: 62, NativeName: "الجمعة", EnglishName: "Al-Jumu'ah", VerseCount: 11, RevelationPlace: types.Madinah},
	{ID: 63, NativeName: "المنافقون", EnglishName: "Al-Munafiqun", VerseCount: 11, RevelationPlace: types.Madinah},
	{ID: 64, NativeName: "التغابن", EnglishName: "At-Taghabun", VerseCount: 18, RevelationPlace: types.Madinah},
	{ID: 65, NativeName: "الطلاق", EnglishName: "At-Talaq", VerseCount: 12, RevelationPlace: types.Madinah},
	{ID: 66, NativeName: "التحريم", EnglishName: "At-Tahrim", VerseCount: 12, RevelationPlace: types.Madinah},
	{ID: 67, NativeName: "الملك", EnglishName: "Al-Mulk", VerseCount: 30, RevelationPlace: types.Makkah},
	{ID: 68, NativeName: "القلم", EnglishName: "Al-Qalam", VerseCount: 52, RevelationPlace: types.Makkah},
	{ID: 69, NativeName: "الحاقة", EnglishName: "Al-Haqqah", VerseCount: 52, RevelationPlace: types.Makkah},
	{ID: 70, NativeName: "المعارج", EnglishName: "Al-Ma'arij", VerseCount: 44, RevelationPlace: types.Makkah},
	{ID: 71, NativeName: "نوح", EnglishName: "Nuh", VerseCount: 28, RevelationPlace: types.Makkah},
	{ID: 72, NativeName: "الجن", EnglishName: "Al-Jinn", VerseCount: 28, RevelationPlace: types.Makkah},
	{ID: 73, NativeName: "المزمل", EnglishName: "Al-Muzzammil", VerseCount: 20, RevelationPlace: types.Makkah},
	{ID: 74, NativeName: "المدثر", EnglishName: "Al-Muddaththir", VerseCount: 56, RevelationPlace: types.Makkah},
	{ID: 75, NativeName: "القيامة", EnglishName: "Al-Qiyamah", VerseCount: 40, RevelationPlace: types.Makkah},
	{ID: 76, NativeName: "الإنسان", EnglishName: "Al-Insan", VerseCount: 31, RevelationPlace: types.Madinah},
	{ID: 77, NativeName: "المرسلات", EnglishName: "Al-Mursalat", VerseCount: 50, RevelationPlace: types.Makkah},
	{ID: 78, NativeName: "النبأ", EnglishName: "An-Naba", VerseCount: 40, RevelationPlace: types.Makkah},
	{ID: 79, NativeName: "النازعات", EnglishName: "An-Nazi'at", VerseCount: 46, RevelationPlace: types.Makkah},
	{ID: 80, NativeName: "عبس", EnglishName: "Abasa", VerseCount: 42, RevelationPlace: types.Makkah},
	{ID: 81, NativeName: "التكوير", EnglishName: "At-Takwir", VerseCount: 29, RevelationPlace: types.Makkah},
	{ID: 82, NativeName: "الانفطار", EnglishName: "Al-Infitar", VerseCount: 19, RevelationPlace: types.Makkah},
	{ID: 83, NativeName: "المطففين", EnglishName: "Al-Mutaffifin", VerseCount: 36, RevelationPlace: types.Makkah},
	{ID: 84, NativeName: "الانشقاق", EnglishName: "Al-Inshiqaq", VerseCount: 25, RevelationPlace: types.Makkah},
	{ID: 85, NativeName: "البروج", EnglishName: "Al-Buruj", VerseCount: 22, RevelationPlace: types.Makkah},
	{ID: 86, NativeName: "الطارق", EnglishName: "At-Tariq", VerseCount: 17, RevelationPlace: types.Makkah},
	{ID: 87, NativeName: "الأعلى", EnglishName: "Al-A'la", VerseCount: 19, RevelationPlace: types.Makkah},
	{ID: 88, NativeName: "الغاشية", EnglishName: "Al-Ghashiyah", VerseCount: 26, RevelationPlace: types.Makkah},
	{ID: 89, NativeName: "الفجر", EnglishName: "Al-Fajr", VerseCount: 30, RevelationPlace: types.Makkah},
	{ID: 90, NativeName: "البلد", EnglishName: "Al-Balad", VerseCount: 20, RevelationPlace: types.Makkah},
	{ID: 91, NativeName: "الشمس", EnglishName: "Ash-Shams", VerseCount: 15, RevelationPlace: types.Makkah},
	{ID: 92, NativeName: "الليل", EnglishName: "Al-Layl", VerseCount: 21, RevelationPlace: types.Makkah},
	{ID: 93, NativeName: "الضحى", EnglishName: "Ad-Duhaa", VerseCount: 11, RevelationPlace: types.Makkah},
	{ID: 94, NativeName: "الشرح", EnglishName: "Ash-Sharh", VerseCount: 8, RevelationPlace: types.Makkah},
	{ID: 95, NativeName: "التين", EnglishName: "At-Tin", VerseCount: 8, RevelationPlace: types.Makkah},
	{ID: 96, NativeName: "العلق", EnglishName: "Al-Alaq", VerseCount: 19, RevelationPlace: types.Makkah},
	{ID: 97, NativeName: "القدر", EnglishName: "Al-Qadr", VerseCount: 5, RevelationPlace: types.Makkah},
	{ID: 98, NativeName: "البينة", EnglishName: "Al-Bayyinah", VerseCount: 8, RevelationPlace: types.Madinah},
	{ID: 99, NativeName: "الزلزلة", EnglishName: "Az-Zalzalah", VerseCount: 8, RevelationPlace: types.Madinah},
	{ID: 100, NativeName: "العاديات", EnglishName: "Al-Adiyat", VerseCount: 11, RevelationPlace: types.Makkah},
	{ID: 101, NativeName: "القارعة", EnglishName: "Al-Qari'ah", VerseCount: 11, RevelationPlace: types.Makkah},
	{ID: 102, NativeName: "التكاثر", EnglishName: "At-Takathur", VerseCount: 8, RevelationPlace: types.Makkah},
	{ID: 103, NativeName: "العصر", EnglishName: "Al-Asr", VerseCount: 3, RevelationPlace: types.Makkah},
	{ID: 104, NativeName: "الهمزة", EnglishName: "Al-Humazah", VerseCount: 9, RevelationPlace: types.Makkah},
	{ID: 105, NativeName: "الفيل", EnglishName: "Al-Fil", VerseCount: 5, RevelationPlace: types.Makkah},
	{ID: 106, NativeName: "قريش", EnglishName: "Quraysh", VerseCount: 4, RevelationPlace: types.Makkah},
	{ID: 107, NativeName: "الماعون", EnglishName: "Al-Ma'un", VerseCount: 7, RevelationPlace: types.Makkah},
	{ID: 108, NativeName: "الكوثر", EnglishName: "Al-Kawthar", VerseCount: 3, RevelationPlace: types.Makkah},
	{ID: 109, NativeName: "الكافرون", EnglishName: "Al-Kafirun", VerseCount: 6, RevelationPlace: types.Makkah},
	{ID: 110, NativeName: "النصر", EnglishName: "An-Nasr", VerseCount: 3, RevelationPlace: types.Madinah},
	{ID: 111, NativeName: "المسد", EnglishName: "Al-Masad", VerseCount: 5, RevelationPlace: types.Makkah},
	{ID: 112, NativeName: "الإخلاص", EnglishName: "Al-Ikhlas", VerseCount: 4, RevelationPlace: types.Makkah},
	{ID: 113, NativeName: "الفلق", EnglishName: "Al-Falaq", VerseCount: 5, RevelationPlace: types.Makkah},
	{ID: 114, NativeName: "الناس", EnglishName: "An-Nas", VerseCount: 6, RevelationPlace: types.Makkah},
}

// Lookup returns the chapter with the given id.
func Lookup(chapterID int) (types.ChapterInfo, bool) {
	if chapterID < FirstChapter || chapterID > LastChapter {
		return types.ChapterInfo{}, false
	}
	return chapters[chapterID-1], true
}

// Chapter is Lookup with an InvalidChapter failure for unknown ids.
func Chapter(chapterID int) (types.ChapterInfo, error) {
	info, ok := Lookup(chapterID)
	if !ok {
		return types.ChapterInfo{}, types.NewFailure(types.KindInvalidChapter, nil,
			"chapter %d is outside %d-%d", chapterID, FirstChapter, LastChapter)
	}
	return info, nil
}

// Chapters returns a copy of the table in id order.
func Chapters() []types.ChapterInfo {
	out := make([]types.ChapterInfo, len(chapters))
	copy(out, chapters[:])
	return out
}

// VerseCount returns the number of verses in a chapter, or 0 for unknown ids.
func VerseCount(chapterID int) int {
	info, ok := Lookup(chapterID)
	if !ok {
		return 0
	}
	return info.VerseCount
}

// TotalVerses returns the number of verses in the whole corpus.
func TotalVerses() int {
	total := 0
	for _, c := range chapters {
		total += c.VerseCount
	}
	return total
}

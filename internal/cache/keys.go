package cache

// RankKey - ключ кэша ранжированного списка менторов для пользователя.
func RankKey(userID string) string {
	return "matching:mentors:" + userID
}

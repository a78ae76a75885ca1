/*
Package lru implements a Least Recently Used (LRU) cache.

Every operation runs in constant time. A map indexes keys to handles into an
arena-backed doubly linked list, and the list order is the recency order:
the front holds the most recently set entry, the back holds the next entry to be evicted.

Set and Touch move an entry to the front. Get, Contains and the recency queries
do not change the order.

Cache is not safe for concurrent access. Use Synced when several goroutines share one cache.

# Example Usage

## Basic

The following example shows all basic operations of the cache.

	type User struct {
		ID   int
		Name string
	}

	func basicExample() {
		userCache := lru.New[int, User]()

		user := User{ID: 1, Name: "John Doe"}

		// Set the user in the cache.
		userCache.Set(user.ID, user)

		// Get the user from the cache.
		userFromCache, err := userCache.Get(user.ID)
		if err != nil {
			// Handle error.
		}

		fmt.Printf("Got user: %+v\n", userFromCache) // Got user: {ID:1 Name:John Doe}

		// Update cache entry. The new value replaces the old one.
		user.Name = "Jane Doe"
		userCache.Set(user.ID, user)

		// Trying to get a non-existing user from the cache will return an error.
		_, err = userCache.Get(2) // errors.Is(err, lru.ErrNotFound)

		// Get the max number of entries.
		fmt.Printf("Limit of cache: %d\n", userCache.Limit()) // Limit of cache: 100

		// Get count of stored values in cache.
		fmt.Printf("Count of stored values in cache: %d\n", userCache.Len()) // Count of stored values in cache: 1
	}

## Eviction

The following example shows eviction with a custom limit.

	func evictionExample(log *zap.Logger) {
		c := lru.New(
			lru.WithLimit[string, string](2),
			lru.WithLogger[string, string](log),
			lru.WithOnEvict(func(key, value string) {
				fmt.Printf("evicted %s\n", key)
			}),
		)

		c.SetMany(
			lru.Pair[string, string]{Key: "a", Value: "A"},
			lru.Pair[string, string]{Key: "b", Value: "B"},
		)

		// Setting "a" again makes "b" the least recently used entry.
		c.Set("a", "A")

		// Setting a third key evicts "b".
		c.Set("c", "C") // evicted b

		key, _ := c.LeastRecentKey() // "a"
		fmt.Println(key)
	}

Setting a limit of zero or less with WithLimit disables eviction.
*/
package lru

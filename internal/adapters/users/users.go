// Package users answers the users/groups provider contract (§6):
// uid/gid -> name lookups, the current uid, and group-membership checks,
// backed by a read-mostly cache populated lazily under a single mutex per
// the concurrency model (§5).
package users

import (
	"os/user"
	"strconv"
	"sync"
)

type Cache struct {
	mu         sync.Mutex
	users      map[uint32]string
	groups     map[uint32]string
	currentUID uint32
	myGroups   map[uint32]bool
	loaded     bool
}

func New() *Cache {
	return &Cache{users: map[uint32]string{}, groups: map[uint32]string{}}
}

func (c *Cache) ensureLoaded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return
	}
	c.loaded = true

	if me, err := user.Current(); err == nil {
		if uid, err := strconv.ParseUint(me.Uid, 10, 32); err == nil {
			c.currentUID = uint32(uid)
		}
		c.myGroups = map[uint32]bool{}
		if gids, err := me.GroupIds(); err == nil {
			for _, g := range gids {
				if n, err := strconv.ParseUint(g, 10, 32); err == nil {
					c.myGroups[uint32(n)] = true
				}
			}
		}
	}
}

// UserName resolves a uid to a username, caching the result; returns the
// numeric uid as a string if no such user exists.
func (c *Cache) UserName(uid uint32) string {
	c.ensureLoaded()

	c.mu.Lock()
	if name, ok := c.users[uid]; ok {
		c.mu.Unlock()
		return name
	}
	c.mu.Unlock()

	name := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(name); err == nil {
		name = u.Username
	}

	c.mu.Lock()
	c.users[uid] = name
	c.mu.Unlock()
	return name
}

// GroupName resolves a gid to a group name the same way UserName does.
func (c *Cache) GroupName(gid uint32) string {
	c.ensureLoaded()

	c.mu.Lock()
	if name, ok := c.groups[gid]; ok {
		c.mu.Unlock()
		return name
	}
	c.mu.Unlock()

	name := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(name); err == nil {
		name = g.Name
	}

	c.mu.Lock()
	c.groups[gid] = name
	c.mu.Unlock()
	return name
}

// CurrentUID returns the uid exa itself is running as.
func (c *Cache) CurrentUID() uint32 {
	c.ensureLoaded()
	return c.currentUID
}

// IsCurrentUserInGroup reports whether the running user is a member of
// gid, for the "you"/"yours" highlight colours (§6 default palette).
func (c *Cache) IsCurrentUserInGroup(gid uint32) bool {
	c.ensureLoaded()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.myGroups[gid]
}

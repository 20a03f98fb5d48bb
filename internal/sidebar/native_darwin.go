//go:build darwin && cgo

package sidebar

/*
#cgo LDFLAGS: -framework CoreFoundation -framework CoreServices -framework NetFS
#include <errno.h>
#include <stdlib.h>
#include <string.h>
#include <CoreFoundation/CoreFoundation.h>
#include <NetFS/NetFS.h>

typedef const void *sfl_list_t;
typedef const void *sfl_item_t;

typedef sfl_list_t (*sfl_create_fn)(CFAllocatorRef, CFStringRef, CFTypeRef);
typedef CFArrayRef (*sfl_copy_snapshot_fn)(sfl_list_t, UInt32 *);
typedef CFStringRef (*sfl_copy_display_name_fn)(sfl_item_t);
typedef OSStatus (*sfl_resolve_fn)(sfl_item_t, UInt32, CFURLRef *, void *);
typedef OSStatus (*sfl_move_fn)(sfl_list_t, sfl_item_t, sfl_item_t);
typedef OSStatus (*sfl_remove_fn)(sfl_list_t, sfl_item_t);
typedef sfl_item_t (*sfl_insert_url_fn)(sfl_list_t, sfl_item_t, CFStringRef, const void *, CFURLRef, CFDictionaryRef, CFArrayRef);

typedef struct {
	sfl_list_t               list;
	CFArrayRef               snapshot;
	sfl_item_t               before_first;
	sfl_copy_snapshot_fn     copy_snapshot;
	sfl_copy_display_name_fn copy_display_name;
	sfl_resolve_fn           resolve;
	sfl_move_fn              move;
	sfl_remove_fn            remove;
	sfl_insert_url_fn        insert_url;
} sfl_binding;

static void *sfl_symbol(CFBundleRef bundle, const char *name, int data) {
	CFStringRef s = CFStringCreateWithCString(kCFAllocatorDefault, name, kCFStringEncodingUTF8);
	void *p = data ? CFBundleGetDataPointerForName(bundle, s) : CFBundleGetFunctionPointerForName(bundle, s);
	CFRelease(s);
	return p;
}

// Returns 0 on success, 1 when the bundle is not loaded, 2 when a symbol
// is missing and 3 when the favorites list cannot be created.
static int sfl_bind(sfl_binding *b, const char *bundle_id) {
	CFStringRef ident = CFStringCreateWithCString(kCFAllocatorDefault, bundle_id, kCFStringEncodingUTF8);
	CFBundleRef bundle = CFBundleGetBundleWithIdentifier(ident);
	CFRelease(ident);
	if (bundle == NULL) {
		return 1;
	}

	sfl_create_fn create = (sfl_create_fn)sfl_symbol(bundle, "LSSharedFileListCreate", 0);
	b->copy_snapshot = (sfl_copy_snapshot_fn)sfl_symbol(bundle, "LSSharedFileListCopySnapshot", 0);
	b->copy_display_name = (sfl_copy_display_name_fn)sfl_symbol(bundle, "LSSharedFileListItemCopyDisplayName", 0);
	b->resolve = (sfl_resolve_fn)sfl_symbol(bundle, "LSSharedFileListItemResolve", 0);
	b->move = (sfl_move_fn)sfl_symbol(bundle, "LSSharedFileListItemMove", 0);
	b->remove = (sfl_remove_fn)sfl_symbol(bundle, "LSSharedFileListItemRemove", 0);
	b->insert_url = (sfl_insert_url_fn)sfl_symbol(bundle, "LSSharedFileListInsertItemURL", 0);
	CFStringRef *favorites = (CFStringRef *)sfl_symbol(bundle, "kLSSharedFileListFavoriteItems", 1);
	sfl_item_t *before_first = (sfl_item_t *)sfl_symbol(bundle, "kLSSharedFileListItemBeforeFirst", 1);

	if (create == NULL || b->copy_snapshot == NULL || b->copy_display_name == NULL ||
		b->resolve == NULL || b->move == NULL || b->remove == NULL || b->insert_url == NULL ||
		favorites == NULL || before_first == NULL) {
		return 2;
	}

	b->before_first = *before_first;
	b->list = create(kCFAllocatorDefault, *favorites, NULL);
	if (b->list == NULL) {
		return 3;
	}
	return 0;
}

static void sfl_release(sfl_binding *b) {
	if (b->snapshot != NULL) {
		CFRelease(b->snapshot);
		b->snapshot = NULL;
	}
	if (b->list != NULL) {
		CFRelease(b->list);
		b->list = NULL;
	}
}

static CFIndex sfl_snapshot(sfl_binding *b, UInt32 *seed) {
	if (b->snapshot != NULL) {
		CFRelease(b->snapshot);
		b->snapshot = NULL;
	}
	b->snapshot = b->copy_snapshot(b->list, seed);
	if (b->snapshot == NULL) {
		return -1;
	}
	return CFArrayGetCount(b->snapshot);
}

static sfl_item_t sfl_item_at(sfl_binding *b, CFIndex i) {
	if (b->snapshot == NULL || i < 0 || i >= CFArrayGetCount(b->snapshot)) {
		return NULL;
	}
	return CFArrayGetValueAtIndex(b->snapshot, i);
}

static char *cf_string_copy_utf8(CFStringRef s) {
	if (s == NULL) {
		return NULL;
	}
	CFIndex len = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
	char *buf = malloc(len);
	if (buf == NULL) {
		return NULL;
	}
	if (!CFStringGetCString(s, buf, len, kCFStringEncodingUTF8)) {
		free(buf);
		return NULL;
	}
	return buf;
}

static char *sfl_item_name(sfl_binding *b, CFIndex i) {
	sfl_item_t item = sfl_item_at(b, i);
	if (item == NULL) {
		return NULL;
	}
	CFStringRef name = b->copy_display_name(item);
	if (name == NULL) {
		return NULL;
	}
	char *out = cf_string_copy_utf8(name);
	CFRelease(name);
	return out;
}

static OSStatus sfl_item_path(sfl_binding *b, CFIndex i, char *buf, CFIndex len) {
	sfl_item_t item = sfl_item_at(b, i);
	if (item == NULL) {
		return -50;
	}
	CFURLRef url = NULL;
	OSStatus status = b->resolve(item, 0, &url, NULL);
	if (status != 0) {
		if (url != NULL) {
			CFRelease(url);
		}
		return status;
	}
	if (url == NULL) {
		return -43;
	}
	Boolean ok = CFURLGetFileSystemRepresentation(url, true, (UInt8 *)buf, len);
	CFRelease(url);
	return ok ? 0 : -43;
}

static OSStatus sfl_move_item(sfl_binding *b, CFIndex i, CFIndex after) {
	sfl_item_t item = sfl_item_at(b, i);
	sfl_item_t target = sfl_item_at(b, after);
	if (item == NULL || target == NULL) {
		return -50;
	}
	return b->move(b->list, item, target);
}

static OSStatus sfl_remove_item(sfl_binding *b, CFIndex i) {
	sfl_item_t item = sfl_item_at(b, i);
	if (item == NULL) {
		return -50;
	}
	return b->remove(b->list, item);
}

static int sfl_insert_first(sfl_binding *b, const char *path, Boolean is_dir) {
	CFURLRef url = CFURLCreateFromFileSystemRepresentation(kCFAllocatorDefault, (const UInt8 *)path, strlen(path), is_dir);
	if (url == NULL) {
		return 1;
	}
	sfl_item_t item = b->insert_url(b->list, b->before_first, NULL, NULL, url, NULL, NULL);
	CFRelease(url);
	if (item == NULL) {
		return 2;
	}
	CFRelease(item);
	return 0;
}

static Boolean prefs_synchronize(const char *domain) {
	CFStringRef d = CFStringCreateWithCString(kCFAllocatorDefault, domain, kCFStringEncodingUTF8);
	Boolean ok = CFPreferencesAppSynchronize(d);
	CFRelease(d);
	return ok;
}

static int netfs_mount(const char *share, char **mount_point, char **diagnostic) {
	*mount_point = NULL;
	*diagnostic = NULL;

	CFURLRef url = CFURLCreateWithBytes(kCFAllocatorDefault, (const UInt8 *)share, strlen(share), kCFStringEncodingUTF8, NULL);
	if (url == NULL) {
		return EINVAL;
	}

	CFMutableDictionaryRef open_options = CFDictionaryCreateMutable(kCFAllocatorDefault, 0,
		&kCFTypeDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);
	CFDictionarySetValue(open_options, kNAUIOptionKey, kNAUIOptionNoUI);

	CFMutableDictionaryRef mount_options = CFDictionaryCreateMutable(kCFAllocatorDefault, 0,
		&kCFTypeDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);
	CFDictionarySetValue(mount_options, kNetFSAllowSubMountsKey, kCFBooleanTrue);

	CFArrayRef mounts = NULL;
	int rc = NetFSMountURLSync(url, NULL, NULL, NULL, open_options, mount_options, &mounts);
	if (rc == 0 && mounts != NULL && CFArrayGetCount(mounts) > 0) {
		*mount_point = cf_string_copy_utf8((CFStringRef)CFArrayGetValueAtIndex(mounts, 0));
	} else if (mounts != NULL) {
		CFStringRef desc = CFCopyDescription(mounts);
		*diagnostic = cf_string_copy_utf8(desc);
		if (desc != NULL) {
			CFRelease(desc);
		}
	}

	if (mounts != NULL) {
		CFRelease(mounts);
	}
	CFRelease(mount_options);
	CFRelease(open_options);
	CFRelease(url);
	return rc;
}
*/
import "C"

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"unsafe"
)

const nativeAvailable = true

// maxPathLen matches PATH_MAX on macOS.
const maxPathLen = 1024

// nativeList is the shared file list bound from a system bundle. Handles
// are indexes into the snapshot array retained by the binding.
type nativeList struct {
	mu sync.Mutex
	b  *C.sfl_binding
}

func newNativeServices(bundleID string) (Services, error) {
	b := (*C.sfl_binding)(C.calloc(1, C.sizeof_sfl_binding))
	if b == nil {
		return Services{}, fmt.Errorf("failed to allocate shared file list binding")
	}

	cid := C.CString(bundleID)
	defer C.free(unsafe.Pointer(cid))

	switch rc := C.sfl_bind(b, cid); rc {
	case 0:
	case 1:
		C.free(unsafe.Pointer(b))
		return Services{}, fmt.Errorf("bundle %s is not loaded", bundleID)
	case 2:
		C.free(unsafe.Pointer(b))
		return Services{}, fmt.Errorf("bundle %s does not export the shared file list API", bundleID)
	default:
		C.free(unsafe.Pointer(b))
		return Services{}, fmt.Errorf("failed to create the favorites list (code %d)", int(rc))
	}

	return Services{
		List:    &nativeList{b: b},
		Mounter: netFSMounter{},
		Prefs:   cfPreferences{},
	}, nil
}

func (l *nativeList) Snapshot() (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.b == nil {
		return Snapshot{}, fmt.Errorf("shared file list is closed")
	}

	var seed C.UInt32
	n := int(C.sfl_snapshot(l.b, &seed))
	if n < 0 {
		return Snapshot{}, fmt.Errorf("LSSharedFileListCopySnapshot returned no snapshot")
	}

	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		name := ""
		if cname := C.sfl_item_name(l.b, C.CFIndex(i)); cname != nil {
			name = C.GoString(cname)
			C.free(unsafe.Pointer(cname))
		}
		items = append(items, Item{Handle: Handle(i), Name: name})
	}
	return Snapshot{Seed: uint32(seed), Items: items}, nil
}

func (l *nativeList) Resolve(item Handle) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.b == nil {
		return "", fmt.Errorf("shared file list is closed")
	}

	buf := (*C.char)(C.malloc(maxPathLen))
	defer C.free(unsafe.Pointer(buf))
	if status := C.sfl_item_path(l.b, C.CFIndex(item), buf, maxPathLen); status != 0 {
		return "", fmt.Errorf("LSSharedFileListItemResolve: OSStatus %d", int(status))
	}
	return C.GoString(buf), nil
}

func (l *nativeList) Move(item, after Handle) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.b == nil {
		return fmt.Errorf("shared file list is closed")
	}

	if status := C.sfl_move_item(l.b, C.CFIndex(item), C.CFIndex(after)); status != 0 {
		return fmt.Errorf("LSSharedFileListItemMove: OSStatus %d", int(status))
	}
	return nil
}

func (l *nativeList) Remove(item Handle) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.b == nil {
		return fmt.Errorf("shared file list is closed")
	}

	if status := C.sfl_remove_item(l.b, C.CFIndex(item)); status != 0 {
		return fmt.Errorf("LSSharedFileListItemRemove: OSStatus %d", int(status))
	}
	return nil
}

func (l *nativeList) InsertFirst(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.b == nil {
		return fmt.Errorf("shared file list is closed")
	}

	isDir := C.Boolean(0)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		isDir = 1
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	switch rc := C.sfl_insert_first(l.b, cpath, isDir); rc {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("cannot build a file URL for %s", path)
	default:
		return fmt.Errorf("LSSharedFileListInsertItemURL returned no item")
	}
}

func (l *nativeList) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.b == nil {
		return nil
	}
	C.sfl_release(l.b)
	C.free(unsafe.Pointer(l.b))
	l.b = nil
	return nil
}

// netFSMounter mounts shares under /Volumes without UI and allows
// sub-directory mounts of root shares.
type netFSMounter struct{}

func (netFSMounter) Mount(shareURL string) (string, error) {
	cshare := C.CString(shareURL)
	defer C.free(unsafe.Pointer(cshare))

	var mountPoint, diagnostic *C.char
	rc := int(C.netfs_mount(cshare, &mountPoint, &diagnostic))
	defer func() {
		if mountPoint != nil {
			C.free(unsafe.Pointer(mountPoint))
		}
		if diagnostic != nil {
			C.free(unsafe.Pointer(diagnostic))
		}
	}()

	if rc != 0 {
		msg := ""
		if diagnostic != nil {
			msg = C.GoString(diagnostic)
		} else if rc > 0 {
			msg = syscall.Errno(rc).Error()
		}
		return "", &MountError{URL: shareURL, Status: rc, Message: msg}
	}
	if mountPoint == nil {
		return "", &MountError{URL: shareURL, Message: "no mount point reported"}
	}
	return C.GoString(mountPoint), nil
}

type cfPreferences struct{}

func (cfPreferences) Synchronize(domain string) error {
	cdomain := C.CString(domain)
	defer C.free(unsafe.Pointer(cdomain))
	if C.prefs_synchronize(cdomain) == 0 {
		return fmt.Errorf("CFPreferencesAppSynchronize failed for %s", domain)
	}
	return nil
}

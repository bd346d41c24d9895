package preview

// clientScript connects the gallery page to /ws. It forwards DOM events of
// elements carrying a data-on-<event> marker and swaps #vangoui-root with
// every html frame, restoring focus to the element that had it.
const clientScript = `(function () {
  var root = document.getElementById("vangoui-root");
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(scheme + location.host + "/ws");

  function target(el, name) {
    while (el && el !== root) {
      if (el.dataset && el.dataset.hid && el.hasAttribute("data-on-" + name)) return el;
      el = el.parentElement;
    }
    return null;
  }

  function send(el, name) {
    if (ws.readyState !== WebSocket.OPEN) return;
    var frame = { hid: el.dataset.hid, event: name };
    if (el.value !== undefined) frame.value = String(el.value);
    if (el.files) {
      frame.files = Array.prototype.map.call(el.files, function (f) {
        return { name: f.name, size: f.size, type: f.type };
      });
    }
    ws.send(JSON.stringify(frame));
  }

  function listen(domEvent, name) {
    root.addEventListener(domEvent, function (e) {
      var el = target(e.target, name);
      if (!el) return;
      if (name === "mouseenter" || name === "mouseleave") {
        if (e.relatedTarget && el.contains(e.relatedTarget)) return;
      }
      if (name === "click" && el.tagName === "LABEL") return;
      send(el, name);
    }, true);
  }

  listen("click", "click");
  listen("input", "input");
  listen("change", "change");
  listen("focusin", "focus");
  listen("focusout", "blur");
  listen("mouseover", "mouseenter");
  listen("mouseout", "mouseleave");

  ws.onmessage = function (msg) {
    var frame = JSON.parse(msg.data);
    if (frame.type === "error") {
      console.warn("vangoui:", frame.code || "", frame.error);
      return;
    }
    var active = document.activeElement;
    var hid = active && active.dataset ? active.dataset.hid : null;
    var start = active && "selectionStart" in active ? active.selectionStart : null;
    root.innerHTML = frame.html;
    if (hid) {
      var next = root.querySelector('[data-hid="' + hid + '"]');
      if (next) {
        next.focus();
        if (start !== null && next.setSelectionRange) {
          try { next.setSelectionRange(start, start); } catch (e) {}
        }
      }
    }
  };

  ws.onclose = function () {
    console.warn("vangoui: connection closed");
  };
})();`
